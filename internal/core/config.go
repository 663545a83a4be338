package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the die
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}

// GameState represents the current state of a game as the platform sees it.
type GameState struct {
	Turns    int  // Completed turns
	Winner   int  // Winning player number, 0 while undecided
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Busy     bool // Whether an animation is still playing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MatchReport summarizes a finished game for the results ledger.
type MatchReport struct {
	Variant        string
	Winner         int
	Turns          int
	Positions      [2]int
	SnakeBites     [2]int
	LaddersClimbed [2]int
	Overshoots     [2]int
}
