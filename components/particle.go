package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is the state of the bouncing particle.
type ParticleData struct {
	Position math.Vec2 // pixels
	Velocity math.Vec2 // pixels per tick
	Size     float64   // diameter in pixels

	// IsColliding latches while the particle is past the boundary so that
	// reflection and growth fire once per contact.
	IsColliding bool

	// DragAnchor is the position captured when a drag began; nil when idle.
	DragAnchor *math.Vec2
}

// IsDragging reports whether a drag gesture currently holds the particle.
func (p *ParticleData) IsDragging() bool {
	return p.DragAnchor != nil
}

var Particle = donburi.NewComponentType[ParticleData]()
