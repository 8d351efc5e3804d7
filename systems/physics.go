package systems

import (
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances every particle by one tick and publishes a
// CollisionEvent for each new boundary contact.
func UpdatePhysics(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	sim.Tick++

	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		particle := components.Particle.Get(e)
		if !StepParticle(particle, arena, sim.Gravity) {
			return
		}

		sim.Bounces++
		components.CollisionEventType.Publish(ecs.World, components.CollisionEvent{
			Particle: e,
			Position: particle.Position,
			Size:     particle.Size,
		})
	})
}

// StepParticle integrates position, applies gravity and resolves the
// circular boundary. It returns true on a collision transition, i.e. the
// tick the particle first passes the boundary.
func StepParticle(p *components.ParticleData, arena *components.ArenaData, gravity float64) bool {
	p.Position.X += gamemath.TruncStep(p.Velocity.X)
	p.Position.Y += gamemath.TruncStep(p.Velocity.Y)

	p.Velocity.Y += gravity

	dx := p.Position.X - arena.Center.X
	dy := p.Position.Y - arena.Center.Y
	distance := gamemath.Distance(arena.Center.X, arena.Center.Y, p.Position.X, p.Position.Y)

	if !gamemath.OutsideCircle(distance, arena.Radius, p.Size) {
		p.IsColliding = false
		return false
	}
	if p.IsColliding {
		return false
	}

	p.IsColliding = true
	nx, ny, ok := gamemath.Normalize(dx, dy)
	if !ok {
		// Only reachable with a boundary smaller than the particle.
		return false
	}
	p.Velocity.X, p.Velocity.Y = gamemath.Reflect(p.Velocity.X, p.Velocity.Y, nx, ny)
	p.Size += cfg.Particle.GrowthStep
	return true
}

// ResetParticleSize shrinks every particle back to its initial size.
func ResetParticleSize(ecs *ecs.ECS) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		components.Particle.Get(e).Size = cfg.Particle.InitialSize
	})
	ShowMessage(ecs, "Size reset")
}
