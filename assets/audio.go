package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/particle-sling/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effect PCM
type AudioLoader struct {
	sfxCache map[toneKey][]byte // Cache synthesized audio bytes for SFX
	context  *audio.Context
}

type toneKey struct {
	id        cfg.SoundID
	frequency int // Hz, rounded
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[toneKey][]byte),
		context:  ctx,
	}
}

// LoadSFX returns a new player for a sound effect each time.
// frequency overrides the configured pitch when non-zero.
func (l *AudioLoader) LoadSFX(id cfg.SoundID, frequency float64) (*audio.Player, error) {
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	if frequency > 0 {
		tone.Frequency = frequency
	}

	key := toneKey{id: id, frequency: int(math.Round(tone.Frequency))}
	pcm, ok := l.sfxCache[key]
	if !ok {
		var err error
		pcm, err = SynthesizeTone(tone, l.context.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize sound %d: %w", id, err)
		}
		l.sfxCache[key] = pcm
	}

	player, err := l.context.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return nil, fmt.Errorf("failed to create player for sound %d: %w", id, err)
	}
	return player, nil
}

// SynthesizeTone renders an exponentially decaying sine wave as 16-bit
// little-endian stereo PCM, the format audio.Context players expect.
func SynthesizeTone(tone cfg.ToneConfig, sampleRate int) ([]byte, error) {
	sr := beep.SampleRate(sampleRate)
	n := sr.N(time.Duration(tone.Duration * float64(time.Second)))
	if n <= 0 {
		return nil, nil
	}

	sine, err := generators.SineTone(sr, tone.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone at %.0fHz: %w", tone.Frequency, err)
	}
	streamer := &effects.Gain{
		Streamer: &decay{streamer: beep.Take(n, sine), rate: tone.Decay / float64(sr)},
		Gain:     tone.Volume - 1,
	}

	buf := make([]byte, 0, n*4)
	samples := make([][2]float64, 512)
	for {
		read, ok := streamer.Stream(samples)
		for _, frame := range samples[:read] {
			buf = appendSample(buf, frame[0])
			buf = appendSample(buf, frame[1])
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func appendSample(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint16(buf, uint16(int16(clampUnit(v)*math.MaxInt16)))
}

// decay scales a stream by exp(-rate*i) for the i-th sample
type decay struct {
	streamer beep.Streamer
	rate     float64
	position int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := math.Exp(-d.rate * float64(d.position))
		samples[i][0] *= env
		samples[i][1] *= env
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
