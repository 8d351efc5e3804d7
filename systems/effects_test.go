package systems

import (
	"testing"

	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestBounceFrequency(t *testing.T) {
	tests := []struct {
		size float64
		want float64
	}{
		{10, 660},
		{12, 648},
		{20, 600},
		{1000, 110},
	}

	for _, tt := range tests {
		if got := BounceFrequency(tt.size); got != tt.want {
			t.Errorf("BounceFrequency(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestCollisionEffects(t *testing.T) {
	e := newTestWorld()
	RegisterEffects(e.World)

	entry, _ := components.Particle.First(e.World)
	components.CollisionEventType.Publish(e.World, components.CollisionEvent{
		Particle: entry,
		Position: dmath.Vec2{X: 200, Y: 395},
		Size:     12,
	})
	UpdateEffects(e)

	arena := testArena(e)
	if arena.Flash == nil {
		t.Fatal("Flash = nil after collision")
	}
	if arena.FlashAlpha <= 0 || arena.FlashAlpha >= 1 {
		t.Errorf("FlashAlpha = %v, want in (0, 1)", arena.FlashAlpha)
	}

	queued := getOrCreateAudio(e.World).PendingSFX
	if len(queued) != 1 {
		t.Fatalf("queued %d sounds, want 1", len(queued))
	}
	if queued[0].ID != cfg.SoundBounce || queued[0].Frequency != 648 {
		t.Errorf("queued %+v, want bounce at 648Hz", queued[0])
	}

	ticks := int(float64(cfg.Effects.FlashDuration)*float64(cfg.Window.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateEffects(e)
	}
	if arena.Flash != nil || arena.FlashAlpha != 0 {
		t.Errorf("flash still active after %d ticks: alpha %v", ticks, arena.FlashAlpha)
	}
}

func TestUpdateEffectsIdle(t *testing.T) {
	e := newTestWorld()
	RegisterEffects(e.World)

	UpdateEffects(e)

	if arena := testArena(e); arena.Flash != nil || arena.FlashAlpha != 0 {
		t.Errorf("flash active with no collision: alpha %v", arena.FlashAlpha)
	}
	if _, ok := components.Audio.First(e.World); ok {
		t.Error("audio state created with no collision")
	}
}
