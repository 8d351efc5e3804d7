package factory

import (
	"github.com/automoto/particle-sling/archetypes"
	"github.com/automoto/particle-sling/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateArena(ecs *ecs.ECS, centerX, centerY, radius float64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)

	components.Arena.SetValue(arena, components.ArenaData{
		Center: math.Vec2{X: centerX, Y: centerY},
		Radius: radius,
	})

	return arena
}
