package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// WindowConfig contains window and timing configuration values
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int // ticks per second; 33 keeps a tick at roughly 0.03 seconds
}

// ArenaConfig describes the circular boundary the particle lives in
type ArenaConfig struct {
	CenterX float64
	CenterY float64
	Radius  float64

	OutlineWidth float32
}

// ParticleConfig contains particle-related configuration values
type ParticleConfig struct {
	StartX      float64
	StartY      float64
	InitialSize float64 // diameter in pixels
	GrowthStep  float64 // added to the diameter on each collision transition

	// LaunchDivisor scales the drag displacement down into a launch velocity
	LaunchDivisor float64

	TrailWidth float32
}

// GravityConfig contains the gravity scalar defaults
type GravityConfig struct {
	Default float64
	Step    float64 // change per button press
}

// ControlsConfig positions the gravity/size buttons.
// The buttons stack vertically starting at (X, Y).
type ControlsConfig struct {
	X, Y          int
	Width, Height int
	Gap           int
	FontSize      float64

	IncreaseLabel string
	DecreaseLabel string
	ResetLabel    string
}

// HUDConfig contains status text layout
type HUDConfig struct {
	TextX       int
	VelocityY   int
	AccelY      int
	UnitsY      int
	FontSize    float64
	UnitsHint   string
	DebugMargin int
}

// EffectsConfig contains collision feedback configuration
type EffectsConfig struct {
	FlashDuration float32 // seconds
	FlashWidth    float32
	FlashColor    color.RGBA
}

// MessageConfig contains status message display configuration
type MessageConfig struct {
	DisplayDuration int // ticks
	BoxPadding      int
	TopMargin       int
	BoxColor        color.RGBA
	TextColor       color.RGBA
}

// Global configuration instances
var Window WindowConfig
var Arena ArenaConfig
var Particle ParticleConfig
var Gravity GravityConfig
var Controls ControlsConfig
var HUD HUDConfig
var Effects EffectsConfig
var Message MessageConfig

// Default is the only render layer used by the scene
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	DarkGray  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	LightGray = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

func init() {
	Window = WindowConfig{
		Width:  500,
		Height: 550,
		Title:  "Particle Game",
		TPS:    33,
	}

	// The boundary is the circle inscribed in (0,0)-(400,400)
	Arena = ArenaConfig{
		CenterX:      200,
		CenterY:      200,
		Radius:       200,
		OutlineWidth: 1,
	}

	Particle = ParticleConfig{
		StartX:        200,
		StartY:        200,
		InitialSize:   10,
		GrowthStep:    2,
		LaunchDivisor: 10.0,
		TrailWidth:    3,
	}

	Gravity = GravityConfig{
		Default: 0.2,
		Step:    0.1,
	}

	Controls = ControlsConfig{
		X:             350,
		Y:             420,
		Width:         130,
		Height:        30,
		Gap:           10,
		FontSize:      12,
		IncreaseLabel: "Increase Gravity",
		DecreaseLabel: "Decrease Gravity",
		ResetLabel:    "Reset Size",
	}

	HUD = HUDConfig{
		TextX:       10,
		VelocityY:   420,
		AccelY:      440,
		UnitsY:      460,
		FontSize:    12,
		UnitsHint:   "Heads up, the units are in pixels per tick. A tick here is about 0.03 seconds",
		DebugMargin: 6,
	}

	Effects = EffectsConfig{
		FlashDuration: 0.35,
		FlashWidth:    4,
		FlashColor:    Orange,
	}

	Message = MessageConfig{
		DisplayDuration: 45,
		BoxPadding:      6,
		TopMargin:       8,
		BoxColor:        color.RGBA{0, 0, 0, 160},
		TextColor:       White,
	}
}
