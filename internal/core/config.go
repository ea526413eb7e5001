package core

// RuntimeConfig contains host settings passed to a frontend at start.
// Gameplay settings live in config.PongConfig.
type RuntimeConfig struct {
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for serves; 0 means derive from the clock
	Expanded bool  // Start in expanded viewport mode
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}
