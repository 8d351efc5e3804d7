package systems

import (
	"fmt"

	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/fonts"
	"github.com/automoto/particle-sling/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the velocity/acceleration readout below the arena.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	particleEntry, ok := components.Particle.First(ecs.World)
	if !ok {
		return
	}
	p := components.Particle.Get(particleEntry)
	sim := GetOrCreateSimulation(ecs)

	face := fonts.Regular.Get()
	x := cfg.HUD.TextX
	text.Draw(screen, VelocityText(p), face, x, cfg.HUD.VelocityY, cfg.Black)
	text.Draw(screen, AccelerationText(sim.Gravity), face, x, cfg.HUD.AccelY, cfg.Black)
	text.Draw(screen, cfg.HUD.UnitsHint, fonts.Small.Get(), x, cfg.HUD.UnitsY, cfg.Black)
}

// VelocityText formats the particle velocity to one decimal with y pointing
// up, e.g. "Velocity: (1.5, -0.2)".
func VelocityText(p *components.ParticleData) string {
	vx := gamemath.RoundTo(p.Velocity.X, 1)
	vy := gamemath.RoundTo(-p.Velocity.Y, 1)
	return fmt.Sprintf("Velocity: (%.1f, %.1f)", vx, vy)
}

// AccelerationText formats gravity as an upward-positive acceleration.
func AccelerationText(gravity float64) string {
	return fmt.Sprintf("Acceleration: (0, %.1f)", gamemath.RoundTo(-gravity, 1))
}
