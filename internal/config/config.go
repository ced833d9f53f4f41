// Package config provides YAML-based game configuration loading for
// Flappy Dragon.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Field     Field     `yaml:"field"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
}

// Field defines the play field geometry in character cells.
type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines gravity, flap and physics tick pacing.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`           // Added to velocity per tick while below terminal velocity
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Gravity stops accelerating at this velocity
	FlapImpulse      float64 `yaml:"flap_impulse"`      // Velocity set by a flap (negative = up)
	FrameDurationMs  float64 `yaml:"frame_duration_ms"` // Accumulated frame time needed for one physics tick
}

// FrameDuration returns the physics tick threshold as a duration.
func (p Physics) FrameDuration() time.Duration {
	return time.Duration(math.Round(p.FrameDurationMs * float64(time.Millisecond)))
}

// Obstacles defines gap placement and narrowing.
type Obstacles struct {
	GapMin      int `yaml:"gap_min"`       // Lowest gap centre (inclusive)
	GapMax      int `yaml:"gap_max"`       // Highest gap centre (exclusive)
	BaseGapSize int `yaml:"base_gap_size"` // Gap size at score 0
	MinGapSize  int `yaml:"min_gap_size"`  // Gap never narrows below this
}

// Player defines spawn positions and sprite placement.
type Player struct {
	StartX      int     `yaml:"start_x"`      // Scroll position of a fresh game from the menu
	RestartX    int     `yaml:"restart_x"`    // Scroll position after play again
	StartY      int     `yaml:"start_y"`      // Vertical spawn cell
	ScreenX     float64 `yaml:"screen_x"`     // Column the sprite is drawn at
	SpriteScale float64 `yaml:"sprite_scale"` // Sprite scale factor
}

// ScreenColumn returns the cell column the sprite and the obstacle offset are drawn at.
func (p Player) ScreenColumn() int {
	return int(math.Round(p.ScreenX))
}

// Validate reports configuration values the game cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	floats := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Physics.Gravity},
		{"terminal_velocity", c.Physics.TerminalVelocity},
		{"flap_impulse", c.Physics.FlapImpulse},
		{"frame_duration_ms", c.Physics.FrameDurationMs},
		{"screen_x", c.Player.ScreenX},
		{"sprite_scale", c.Player.SpriteScale},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %v", f.name, f.v))
		}
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.TerminalVelocity <= 0 {
		errs = append(errs, fmt.Errorf("terminal_velocity must be positive, got %v", c.Physics.TerminalVelocity))
	}
	if c.Physics.FrameDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("frame_duration_ms must be positive, got %v", c.Physics.FrameDurationMs))
	}
	if c.Physics.FlapImpulse >= 0 {
		errs = append(errs, fmt.Errorf("flap_impulse must be negative, got %v", c.Physics.FlapImpulse))
	}
	if c.Obstacles.GapMax <= c.Obstacles.GapMin {
		errs = append(errs, fmt.Errorf("gap_max (%d) must exceed gap_min (%d)", c.Obstacles.GapMax, c.Obstacles.GapMin))
	}
	if c.Obstacles.GapMin < 0 || c.Obstacles.GapMax > c.Field.Height {
		errs = append(errs, fmt.Errorf("gap range [%d, %d) must lie inside the field height %d",
			c.Obstacles.GapMin, c.Obstacles.GapMax, c.Field.Height))
	}
	if c.Obstacles.MinGapSize < 2 {
		errs = append(errs, fmt.Errorf("min_gap_size must be at least 2, got %d", c.Obstacles.MinGapSize))
	}
	if c.Player.StartY < 0 || c.Player.StartY > c.Field.Height {
		errs = append(errs, fmt.Errorf("start_y must lie in [0, %d], got %d", c.Field.Height, c.Player.StartY))
	}
	if c.Player.SpriteScale <= 0 {
		errs = append(errs, fmt.Errorf("sprite_scale must be positive, got %v", c.Player.SpriteScale))
	}

	return errors.Join(errs...)
}
