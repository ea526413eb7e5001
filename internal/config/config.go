// Package config provides YAML-based game configuration loading and
// difficulty presets for termpong.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PongConfig contains all configuration for the game.
type PongConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Serve    ServeConfig    `yaml:"serve"`
	Viewport ViewportConfig `yaml:"viewport"`
	Input    InputConfig    `yaml:"input"`
}

// FieldConfig defines the base playing field size in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle shape and placement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // Distance from the side wall to the paddle's outer edge
	Speed  float64 `yaml:"speed"` // Units per second
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`      // Nominal serve speed, units per second
	ServeTilt float64 `yaml:"serve_tilt"` // Max serve angle off horizontal, radians
}

// PhysicsConfig defines step parameters.
type PhysicsConfig struct {
	MaxDT         float64 `yaml:"max_dt"`         // Seconds; frame delta cap
	Acceleration  float64 `yaml:"acceleration"`   // Speed factor per paddle bounce
	MaxDeflection float64 `yaml:"max_deflection"` // Bounce angle at the paddle edge, radians
}

// ServeConfig defines the re-serve after a goal.
type ServeConfig struct {
	Delay  time.Duration `yaml:"delay"`
	Toward string        `yaml:"toward"` // "scorer" or "conceder"
}

// Serve direction conventions.
const (
	ServeTowardScorer   = "scorer"
	ServeTowardConceder = "conceder"
)

// ViewportConfig defines the expanded-mode fit and the terminal projection.
type ViewportConfig struct {
	Padding    float64 `yaml:"padding"`
	MinAvailW  float64 `yaml:"min_avail_width"`
	MinAvailH  float64 `yaml:"min_avail_height"`
	CellWidth  float64 `yaml:"cell_width"`  // Field units per terminal column
	CellHeight float64 `yaml:"cell_height"` // Field units per terminal row
}

// InputConfig defines key bindings and key-release synthesis for terminals.
type InputConfig struct {
	Keys        KeyBindings   `yaml:"keys"`
	HoldInitial time.Duration `yaml:"hold_initial"`
	HoldRepeat  time.Duration `yaml:"hold_repeat"`
}

// KeyBindings lists the key identifiers for each control.
type KeyBindings struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Serve     []string `yaml:"serve"`
}

// Validate reports configuration values the engine cannot run with.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle height %v exceeds field height %v", c.Paddle.Height, c.Field.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.Speed <= 0 || c.Paddle.Speed < 0 {
		errs = append(errs, errors.New("ball speed must be positive and paddle speed non-negative"))
	}
	if c.Physics.MaxDT <= 0 {
		errs = append(errs, fmt.Errorf("max_dt must be positive, got %v", c.Physics.MaxDT))
	}
	if c.Physics.Acceleration < 1 {
		errs = append(errs, fmt.Errorf("acceleration must be >= 1, got %v", c.Physics.Acceleration))
	}
	if c.Serve.Delay < 0 {
		errs = append(errs, fmt.Errorf("serve delay must not be negative, got %v", c.Serve.Delay))
	}
	switch c.Serve.Toward {
	case ServeTowardScorer, ServeTowardConceder:
	default:
		errs = append(errs, fmt.Errorf("serve.toward must be %q or %q, got %q",
			ServeTowardScorer, ServeTowardConceder, c.Serve.Toward))
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		errs = append(errs, errors.New("viewport cell size must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed *= 0.75
		cfg.Physics.Acceleration = 1.02
	case DifficultyHard:
		cfg.Ball.Speed *= 1.3
		cfg.Physics.Acceleration = 1.05
		cfg.Paddle.Height *= 0.8
	}
}
