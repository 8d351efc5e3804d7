package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBounce
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Decay     float64 // exponential decay rate per second
	Volume    float64 // 0.0 - 1.0
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig

	// Bounce pitch drops by this many Hz per pixel of particle growth,
	// bottoming out at MinBounceFrequency
	BouncePitchDrop    float64
	MinBounceFrequency float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundBounce: {
				Frequency: 660,
				Duration:  0.08,
				Decay:     40,
				Volume:    0.5,
			},
		},
		BouncePitchDrop:    6,
		MinBounceFrequency: 110,
	}
}
