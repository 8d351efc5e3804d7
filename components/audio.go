package components

import (
	cfg "github.com/automoto/particle-sling/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// PendingSound is a queued sound effect with an optional pitch override
type PendingSound struct {
	ID        cfg.SoundID
	Frequency float64 // Hz; 0 uses the configured tone
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []PendingSound
}

var Audio = donburi.NewComponentType[AudioData]()
