package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	cfg "github.com/automoto/particle-sling/config"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI is the column of buttons beside the status text.
type ControlsUI struct {
	UI *ebitenui.UI

	OnIncreaseGravity func()
	OnDecreaseGravity func()
	OnResetSize       func()

	normalFace text.Face
}

// NewControlsUI builds the button column. Handlers may be nil.
func NewControlsUI(onIncrease, onDecrease, onReset func()) (*ControlsUI, error) {
	ui := &ControlsUI{
		OnIncreaseGravity: onIncrease,
		OnDecreaseGravity: onDecrease,
		OnResetSize:       onReset,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Controls.FontSize}
	return nil
}

func (ui *ControlsUI) buildUI() {
	// No background so the arena shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	c := cfg.Controls
	padding := widget.Insets{
		Right:  cfg.Window.Width - (c.X + c.Width),
		Bottom: cfg.Window.Height - ControlRegions()[len(ControlRegions())-1].Max.Y,
	}
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(c.Gap),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	column.AddChild(ui.newButton(c.IncreaseLabel, func() {
		if ui.OnIncreaseGravity != nil {
			ui.OnIncreaseGravity()
		}
	}))
	column.AddChild(ui.newButton(c.DecreaseLabel, func() {
		if ui.OnDecreaseGravity != nil {
			ui.OnDecreaseGravity()
		}
	}))
	column.AddChild(ui.newButton(c.ResetLabel, func() {
		if ui.OnResetSize != nil {
			ui.OnResetSize()
		}
	}))

	rootContainer.AddChild(column)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ControlsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Controls.Width, cfg.Controls.Height)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    eimage.NewNineSliceColor(cfg.LightGray),
			Hover:   eimage.NewNineSliceColor(color.RGBA{200, 210, 235, 255}),
			Pressed: eimage.NewNineSliceColor(color.RGBA{160, 175, 210, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Black,
			Hover:   cfg.Black,
			Pressed: cfg.DarkGray,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// ControlRegions returns the screen rectangles the buttons occupy, top to
// bottom.
func ControlRegions() []image.Rectangle {
	c := cfg.Controls
	regions := make([]image.Rectangle, 3)
	for i := range regions {
		y := c.Y + i*(c.Height+c.Gap)
		regions[i] = image.Rect(c.X, y, c.X+c.Width, y+c.Height)
	}
	return regions
}

func (ui *ControlsUI) Update() {
	ui.UI.Update()
}

func (ui *ControlsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
