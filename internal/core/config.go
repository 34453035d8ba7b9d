package core

// RuntimeConfig contains host settings passed to the simulation at startup.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (host projection only)
	ScreenH  int   // Terminal height in characters (host projection only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run as seen by the host.
type GameState struct {
	Score    int  // Current score
	Health   int  // Player health
	GameOver bool // Whether the run is halted on game over
	Paused   bool // Whether the run is paused
}
