package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the default match configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			BallSpeed:      0.5,
			SpeedIncrement: 0.04,
			MaxBallSpeed:   1.2,
			MaxBounceAngle: 60,
		},
		Paddles: Paddles{
			Width:         1,
			Height:        0, // Scale with screen height
			Margin:        2,
			Speed:         0.7,
			AISpeedFactor: 0.95,
		},
		AI: AI{
			ReactionDelayMs: 100,
			ErrorMargin:     1.5,
			TrackSmooth:     0.18,
		},
		Gameplay: Gameplay{
			WinScore:     11,
			ServeDelayMs: 1200,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
