package systems

import (
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds the sandbox entities without any systems attached.
func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSimulation(e, cfg.Gravity.Default)
	factory.CreateArena(e, cfg.Arena.CenterX, cfg.Arena.CenterY, cfg.Arena.Radius)
	factory.CreateParticle(e, cfg.Particle.StartX, cfg.Particle.StartY)

	factory.CreateSpace(e, cfg.Window.Width, cfg.Window.Height, 10, 10)
	factory.CreateControlRegion(e, 350, 420, 130, 30)
	factory.CreateProbe(e)
	return e
}

func testParticle(e *ecs.ECS) *components.ParticleData {
	entry, _ := components.Particle.First(e.World)
	return components.Particle.Get(entry)
}

func testArena(e *ecs.ECS) *components.ArenaData {
	entry, _ := components.Arena.First(e.World)
	return components.Arena.Get(entry)
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
