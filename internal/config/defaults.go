package config

import (
	_ "embed"
)

//go:embed defaults/shoutbird.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/shoutbird.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Flight: Flight{
			Physics: Physics{
				Gravity:       0.2,
				FlapImpulse:   -4,
				ScrollSpeed:   2,
				RotationScale: 8,
				DeathRotation: 4,
				MaxRotation:   90,
			},
			Calibration: Calibration{
				SilenceFrames:     100,
				SilenceMultiplier: 1.5,
			},
			Bird: Bird{
				X:             60,
				Width:         34,
				Height:        24,
				TicksPerFrame: 4,
			},
			Obstacles: Obstacles{
				PipeWidth:       52,
				CapTopHeight:    26,
				CapBottomHeight: 26,
				GroundHeight:    32,
				GapBirdHeights:  4,
				PeriodDivisor:   3,
			},
		},
		Audio: Audio{
			Input:           InputMic,
			SampleRate:      44100,
			FramesPerBuffer: 2048,
			Smoothing:       0.8,
			MinDecibels:     -100,
			MaxDecibels:     -30,
			Cues:            true,
			CueVolume:       0.5,
		},
		Display: Display{
			TickRate: 60,
			CellW:    8,
			CellH:    16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
