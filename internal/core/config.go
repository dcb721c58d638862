package core

// RuntimeConfig contains the settings the platform hands to a simulation.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second the platform drives Step at
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// SimState is the status a simulation reports to the platform after a tick.
type SimState struct {
	Steps  uint64  // Physics steps taken since the last reset
	Time   float64 // Simulated seconds since the last reset
	Intent string  // Current thrust intent name
	Paused bool
}

// StepResult is returned by Step after each platform tick.
type StepResult struct {
	State   SimState
	Stepped bool  // Whether the physics world advanced this tick
	Reset   bool  // Whether the scene was rebuilt this tick
	Err     error // Set when a requested rebuild failed; the old scene keeps running
}
