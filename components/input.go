package components

import (
	cfg "github.com/automoto/particle-sling/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PointerData tracks the drag gesture of the mouse (singleton component)
type PointerData struct {
	Position math.Vec2 // last cursor position seen
	Pressed  bool      // drag button held

	// OverControl is set when the current press began on a control button;
	// such presses never drag the particle.
	OverControl bool
}

var Pointer = donburi.NewComponentType[PointerData]()
