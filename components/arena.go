package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ArenaData is the circular boundary.
type ArenaData struct {
	Center math.Vec2
	Radius float64

	// Flash fades the highlight ring after a collision; nil when idle
	Flash      *gween.Tween
	FlashAlpha float32
}

var Arena = donburi.NewComponentType[ArenaData]()
