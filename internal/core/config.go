package core

// RuntimeConfig is what the platform knows about the terminal it runs in.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes a running view session for the platform.
type GameState struct {
	Ticks    uint64  // Frames stepped since the last reset
	Distance float64 // World units walked
	Bumps    int     // Moves rejected by walls or the map edge
	Paused   bool
	TooSmall bool // Terminal cannot fit the view
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
