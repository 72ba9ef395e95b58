package core

// RuntimeConfig contains configuration passed to the animation at
// startup. It carries the terminal dimensions, timing, and the RNG
// seed for deterministic reseeding.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation steps per second
	Seed     int64  // RNG seed; 0 means use current time in platform layer
	GridSize int    // Grid dimension (rows == cols)
	Pattern  string // Seed pattern name
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
		GridSize: 14,
		Pattern:  "random",
	}
}
