package systems

import (
	"fmt"

	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugPanelWidth  = 96
	debugPanelHeight = 86
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Outline the pointer hit regions
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvProbe) {
				c = cfg.Red
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	sim := GetOrCreateSimulation(ecs)
	msg := fmt.Sprintf("TPS: %0.1f\nTick: %d\nBounces: %d", ebiten.ActualTPS(), sim.Tick, sim.Bounces)
	if particleEntry, ok := components.Particle.First(ecs.World); ok {
		p := components.Particle.Get(particleEntry)
		msg += fmt.Sprintf("\nPos: (%.0f, %.0f)\nSize: %.0f", p.Position.X, p.Position.Y, p.Size)
	}

	// Top-right corner, clear of the arena. DebugPrint is white, so back it.
	x := cfg.Window.Width - debugPanelWidth
	vector.FillRect(screen, float32(x), 0, debugPanelWidth, debugPanelHeight, cfg.DarkGray, false)
	ebitenutil.DebugPrintAt(screen, msg, x+cfg.HUD.DebugMargin, cfg.HUD.DebugMargin)
}
