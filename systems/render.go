package systems

import (
	"image/color"

	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders the circular boundary and, after a collision, the fading
// highlight ring.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	cx, cy, r := float32(arena.Center.X), float32(arena.Center.Y), float32(arena.Radius)

	if arena.FlashAlpha > 0 {
		vector.StrokeCircle(screen, cx, cy, r, cfg.Effects.FlashWidth,
			fadeColor(cfg.Effects.FlashColor, arena.FlashAlpha), true)
	}

	vector.StrokeCircle(screen, cx, cy, r, cfg.Arena.OutlineWidth, cfg.Black, true)
}

// DrawParticles renders every particle and, while it is being dragged, the
// sling line from the drag anchor.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		vector.FillCircle(screen,
			float32(p.Position.X), float32(p.Position.Y), float32(p.Size/2),
			cfg.Red, true)

		if p.DragAnchor != nil {
			vector.StrokeLine(screen,
				float32(p.DragAnchor.X), float32(p.DragAnchor.Y),
				float32(p.Position.X), float32(p.Position.Y),
				cfg.Particle.TrailWidth, cfg.Blue, true)
		}
	})
}

// fadeColor scales c's alpha by a in [0, 1], returning a premultiplied color.
func fadeColor(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
