package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in configuration.
func Default() FlappyConfig {
	return FlappyConfig{
		Field: Field{
			Width:  80,
			Height: 45,
		},
		Physics: Physics{
			Gravity:          0.5,
			TerminalVelocity: 1.0,
			FlapImpulse:      -4.0,
			FrameDurationMs:  16.66,
		},
		Obstacles: Obstacles{
			GapMin:      10,
			GapMax:      40,
			BaseGapSize: 20,
			MinGapSize:  2,
		},
		Player: Player{
			StartX:      5,
			RestartX:    2,
			StartY:      25,
			ScreenX:     2.0,
			SpriteScale: 2.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
