package factory

import (
	"github.com/automoto/particle-sling/archetypes"
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateParticle spawns a resting particle of the initial size at (x, y).
func CreateParticle(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)

	components.Particle.SetValue(particle, components.ParticleData{
		Position: math.Vec2{X: x, Y: y},
		Size:     cfg.Particle.InitialSize,
	})

	return particle
}
