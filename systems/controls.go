package systems

import (
	cfg "github.com/automoto/particle-sling/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls applies the keyboard shortcuts that mirror the buttons.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionIncreaseGravity).JustPressed {
		AdjustGravity(ecs, cfg.Gravity.Step)
	}
	if GetAction(input, cfg.ActionDecreaseGravity).JustPressed {
		AdjustGravity(ecs, -cfg.Gravity.Step)
	}
	if GetAction(input, cfg.ActionResetSize).JustPressed {
		ResetParticleSize(ecs)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
		if settings.Debug {
			ShowMessage(ecs, "Debug overlay on")
		} else {
			ShowMessage(ecs, "Debug overlay off")
		}
	}
}

// QuitRequested reports whether the quit shortcut was pressed this tick.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionQuit).JustPressed
}
