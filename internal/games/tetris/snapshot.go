package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Elapsed time.Duration
	Mode    string
	State   GameStateType
	Engine  engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.eng.Over():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.eng.Paused():
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Elapsed: g.elapsed(),
		Mode:    string(g.mode),
		State:   state,
		Engine:  g.eng.Snapshot(),
	}
}
