package systems

import (
	"github.com/automoto/particle-sling/components"
	cfg "github.com/automoto/particle-sling/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterEffects subscribes the collision feedback (flash and bounce sound)
// to the world's collision events. Call once per world.
func RegisterEffects(w donburi.World) {
	components.CollisionEventType.Subscribe(w, onCollisionFlash)
	components.CollisionEventType.Subscribe(w, onCollisionSound)
}

// UpdateEffects delivers queued collision events and advances the flash tween.
// Must run AFTER UpdatePhysics.
func UpdateEffects(ecs *ecs.ECS) {
	components.CollisionEventType.ProcessEvents(ecs.World)

	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	if arena.Flash == nil {
		return
	}

	alpha, finished := arena.Flash.Update(1 / float32(cfg.Window.TPS))
	arena.FlashAlpha = alpha
	if finished {
		arena.Flash = nil
		arena.FlashAlpha = 0
	}
}

func onCollisionFlash(w donburi.World, _ components.CollisionEvent) {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	arena.Flash = gween.New(1, 0, cfg.Effects.FlashDuration, ease.OutQuad)
	arena.FlashAlpha = 1
}

func onCollisionSound(w donburi.World, e components.CollisionEvent) {
	QueueSFX(w, components.PendingSound{
		ID:        cfg.SoundBounce,
		Frequency: BounceFrequency(e.Size),
	})
}

// BounceFrequency lowers the bounce pitch as the particle grows.
func BounceFrequency(size float64) float64 {
	tone := cfg.Sound.Tones[cfg.SoundBounce]
	freq := tone.Frequency - cfg.Sound.BouncePitchDrop*(size-cfg.Particle.InitialSize)
	if freq < cfg.Sound.MinBounceFrequency {
		return cfg.Sound.MinBounceFrequency
	}
	return freq
}
