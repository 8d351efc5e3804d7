package factory

import (
	"github.com/automoto/particle-sling/archetypes"
	"github.com/automoto/particle-sling/components"
	"github.com/automoto/particle-sling/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateControlRegion registers a screen rectangle occupied by a control so
// pointer presses there are left to the UI.
func CreateControlRegion(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	region := archetypes.Control.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvControl)
	obj.Data = region

	components.Object.SetValue(region, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return region
}

// CreateProbe creates the 1x1 object that follows the cursor for hit tests.
func CreateProbe(ecs *ecs.ECS) *donburi.Entry {
	probe := archetypes.Probe.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	obj.Data = probe

	components.Object.SetValue(probe, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return probe
}
