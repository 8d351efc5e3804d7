package systems

import (
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/shared/gamemath"
	"github.com/automoto/particle-sling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePointer turns the mouse into drag and release gestures on the
// particle. Must run BEFORE UpdatePhysics so a drag lands in the same tick.
func UpdatePointer(ecs *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	HandlePointer(ecs, float64(x), float64(y), ebiten.IsMouseButtonPressed(cfg.Input.DragButton))
}

// HandlePointer feeds one pointer sample into the gesture tracker.
// Every tick the button is held and the cursor has moved is a drag event;
// the tick the button goes up is a release event. Presses that begin on a
// control never reach the particle.
func HandlePointer(ecs *ecs.ECS, x, y float64, pressed bool) {
	ptr := getOrCreatePointer(ecs)
	pos := math.Vec2{X: x, Y: y}

	switch {
	case pressed && !ptr.Pressed:
		ptr.Pressed = true
		ptr.OverControl = pointerOverControl(ecs, x, y)

	case pressed && ptr.Pressed:
		if !ptr.OverControl && pos != ptr.Position {
			components.Particle.Each(ecs.World, func(e *donburi.Entry) {
				DragParticle(components.Particle.Get(e), x, y)
			})
		}

	case !pressed && ptr.Pressed:
		if !ptr.OverControl {
			components.Particle.Each(ecs.World, func(e *donburi.Entry) {
				ReleaseParticle(components.Particle.Get(e), x, y)
			})
		}
		ptr.Pressed = false
		ptr.OverControl = false
	}

	ptr.Position = pos
}

// DragParticle moves the particle to the pointer, remembering where it was
// when the drag began.
func DragParticle(p *components.ParticleData, x, y float64) {
	if p.DragAnchor == nil {
		anchor := p.Position
		p.DragAnchor = &anchor
	}
	p.Position = math.Vec2{X: x, Y: y}
}

// ReleaseParticle launches the particle opposite to the drag direction.
// A release with no drag in progress is ignored.
func ReleaseParticle(p *components.ParticleData, x, y float64) {
	if p.DragAnchor == nil {
		return
	}
	p.Velocity.X, p.Velocity.Y = gamemath.LaunchVelocity(
		p.DragAnchor.X, p.DragAnchor.Y, x, y, cfg.Particle.LaunchDivisor,
	)
	p.DragAnchor = nil
}

// pointerOverControl moves the probe to (x, y) and reports whether it
// overlaps any control region.
func pointerOverControl(ecs *ecs.ECS, x, y float64) bool {
	probeEntry, ok := tags.Probe.First(ecs.World)
	if !ok {
		return false
	}
	probe := components.Object.Get(probeEntry)

	probe.X = clamp(x, 0, float64(cfg.Window.Width-1))
	probe.Y = clamp(y, 0, float64(cfg.Window.Height-1))
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvControl)
	if check == nil {
		return false
	}

	// Cells are coarse; confirm the actual overlap.
	for _, obj := range check.Objects {
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			return true
		}
	}
	return false
}

func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
