package core

// RuntimeConfig is what the platform tells a game when it starts.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the platform-facing summary of a running game: enough to
// record a score and decide which keys mean anything.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Paused    bool
}

// StepResult is returned by every Step.
type StepResult struct {
	State GameState
}
