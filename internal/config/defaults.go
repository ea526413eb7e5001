package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration. It mirrors
// defaults/pong.yaml and is used when the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 500,
		},
		Paddle: PaddleConfig{
			Width:  12,
			Height: 80,
			Inset:  30,
			Speed:  360,
		},
		Ball: BallConfig{
			Radius:    8,
			Speed:     360,
			ServeTilt: 0.3,
		},
		Physics: PhysicsConfig{
			MaxDT:         0.033,
			Acceleration:  1.03,
			MaxDeflection: 0.6,
		},
		Serve: ServeConfig{
			Delay:  500 * time.Millisecond,
			Toward: ServeTowardScorer,
		},
		Viewport: ViewportConfig{
			Padding:    20,
			MinAvailW:  640,
			MinAvailH:  360,
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: InputConfig{
			Keys: KeyBindings{
				LeftUp:    []string{"w"},
				LeftDown:  []string{"s"},
				RightUp:   []string{"up"},
				RightDown: []string{"down"},
				Serve:     []string{" "},
			},
			HoldInitial: 550 * time.Millisecond,
			HoldRepeat:  90 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
