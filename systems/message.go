package systems

import (
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/automoto/particle-sling/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage replaces the active status message and restarts its timer.
func ShowMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateMessage counts down the active message
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer <= 0 {
		return
	}

	state.DisplayTimer--
	if state.DisplayTimer == 0 {
		state.Text = ""
	}
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	face := fonts.Regular.Get()
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth + padding*2)
	boxHeight := float32(textHeight + padding*2)

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX) + padding - bounds.Min.X
	textY := int(boxY) + padding - bounds.Min.Y
	text.Draw(screen, state.Text, face, textX, textY, cfg.Message.TextColor)
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
