package core

// RuntimeConfig contains configuration passed to the simulation and drivers at
// initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal driver)
	ScreenH  int   // Screen height in characters (terminal driver)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the compact status drivers poll between frames.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}
