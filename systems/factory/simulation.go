package factory

import (
	"github.com/automoto/particle-sling/archetypes"
	"github.com/automoto/particle-sling/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSimulation(ecs *ecs.ECS, gravity float64) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(sim, components.SimulationData{Gravity: gravity})
	return sim
}
