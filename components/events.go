package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// CollisionEvent is published when the particle first crosses the boundary.
type CollisionEvent struct {
	Particle *donburi.Entry
	Position math.Vec2
	Size     float64 // diameter after growth
}

var CollisionEventType = events.NewEventType[CollisionEvent]()
