package archetypes

import (
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
	)
	Space = newArchetype(
		components.Space,
	)
	Control = newArchetype(
		tags.Control,
		components.Object,
	)
	Probe = newArchetype(
		tags.Probe,
		components.Object,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
