package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical keyboard action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionIncreaseGravity
	ActionDecreaseGravity
	ActionResetSize
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Mouse button that drags and flings the particle
	DragButton ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		DragButton: ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionIncreaseGravity: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyEqual, ebiten.KeyNumpadAdd},
			},
			ActionDecreaseGravity: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
			},
			ActionResetSize: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
