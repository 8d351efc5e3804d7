package systems

import (
	"fmt"

	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSimulation returns the singleton Simulation component, creating
// it with the default gravity if needed
func GetOrCreateSimulation(ecs *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Simulation))
		components.Simulation.SetValue(entry, components.SimulationData{
			Gravity: cfg.Gravity.Default,
		})
	}
	return components.Simulation.Get(entry)
}

// AdjustGravity adds delta to the gravity scalar. Gravity is not clamped and
// may go negative, which makes the particle fall upward.
func AdjustGravity(ecs *ecs.ECS, delta float64) {
	sim := GetOrCreateSimulation(ecs)
	sim.Gravity += delta
	ShowMessage(ecs, fmt.Sprintf("Gravity: %.1f", gamemath.RoundTo(sim.Gravity, 1)))
}

// GetOrCreateSettings returns the singleton Settings component
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
