package engine

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot is a detached copy of everything a renderer needs.
type Snapshot struct {
	Width  int
	Height int
	Grid   [][]core.Color

	Piece      []Point
	PieceKind  Kind
	PieceColor core.Color

	Score        int
	HighScore    int
	Lines        int
	FallInterval time.Duration

	Phase  Phase
	Paused bool
	Over   bool
}

// Snapshot captures the current state. Mutating the result never affects
// the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:        e.board.Width(),
		Height:       e.board.Height(),
		Grid:         e.board.Rows(),
		Piece:        slices.Collect(e.current.Cells()),
		PieceKind:    e.current.Kind(),
		PieceColor:   e.current.Color(),
		Score:        e.score,
		HighScore:    e.highScore,
		Lines:        e.lines,
		FallInterval: e.fallInterval,
		Phase:        e.phase,
		Paused:       e.paused,
		Over:         e.phase == PhaseGameOver,
	}
}
