package systems

import (
	"log"
	"sync"

	"github.com/automoto/particle-sling/assets"
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
	audioWarnOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// UpdateAudio plays the sound effects queued since the last tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	audioData.Context = globalAudioContext

	for _, sound := range audioData.PendingSFX {
		playSFX(sound, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(sound components.PendingSound, volume float64) {
	if volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(sound.ID, sound.Frequency)
	if err != nil {
		audioWarnOnce.Do(func() {
			log.Printf("Warning: Could not play sound: %v", err)
		})
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// QueueSFX queues a sound effect to be played on the next UpdateAudio
func QueueSFX(w donburi.World, sound components.PendingSound) {
	audioData := getOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// getOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func getOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]components.PendingSound, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
