package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the play area and for deterministic simulation.
type RuntimeConfig struct {
	PlayW    float64 // Play area width in world units
	PlayH    float64 // Play area height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The play area matches a typical portrait phone viewport.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		PlayW:    360,
		PlayH:    640,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Collisions is the number of collision events the tick produced.
	Collisions int
}
