package engine

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the state machine position of an Engine.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Settings are the fixed rules of one game.
type Settings struct {
	Width  int
	Height int

	InitialFallInterval time.Duration
	MinFallInterval     time.Duration
	// SpeedStep is taken off the fall interval once per lock that clears
	// at least one row.
	SpeedStep time.Duration

	ScorePerLine int
}

// DefaultSettings returns the classic 10×20 rules.
func DefaultSettings() Settings {
	return Settings{
		Width:               10,
		Height:              20,
		InitialFallInterval: 500 * time.Millisecond,
		MinFallInterval:     100 * time.Millisecond,
		SpeedStep:           20 * time.Millisecond,
		ScorePerLine:        100,
	}
}

func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.MinFallInterval <= 0 {
		s.MinFallInterval = time.Millisecond
	}
	if s.InitialFallInterval < s.MinFallInterval {
		s.InitialFallInterval = s.MinFallInterval
	}
	if s.SpeedStep < 0 {
		s.SpeedStep = 0
	}
	if s.ScorePerLine < 0 {
		s.ScorePerLine = 0
	}
	return s
}

// Engine runs one game: a single falling piece against a single board.
// It is not safe for concurrent use; the session loop drives it from one
// goroutine.
type Engine struct {
	settings Settings
	board    *Board
	source   ShapeSource
	store    HighScoreStore

	current Piece
	phase   Phase
	paused  bool

	score     int
	highScore int
	lines     int

	fallInterval time.Duration
	clock        time.Duration // last time passed to Advance
	lastFall     time.Duration // reference instant for the next gravity step
}

// New creates an engine, loads the high score once and spawns the first
// piece. A nil source draws uniformly with seed 1; a nil store keeps the
// high score in memory.
func New(settings Settings, source ShapeSource, store HighScoreStore) *Engine {
	settings = settings.normalized()
	if source == nil {
		source = NewUniformSource(1)
	}
	if store == nil {
		store = &MemoryHighScore{}
	}

	e := &Engine{
		settings:     settings,
		board:        NewBoard(settings.Width, settings.Height),
		source:       source,
		store:        store,
		highScore:    max(0, store.Load()),
		fallInterval: settings.InitialFallInterval,
	}
	e.spawn()
	return e
}

// spawn creates the next piece at top-center. A blocked spawn ends the game.
func (e *Engine) spawn() {
	e.phase = PhaseSpawning

	shape := ShapeOf(e.source.NextShape())
	x := core.Clamp(e.board.Width()/2, 0, e.board.Width()-shape.Cols())
	e.current = NewPiece(shape, x, 0)

	if !e.board.IsValidMove(e.current, 0, 0) {
		e.phase = PhaseGameOver
		return
	}
	e.phase = PhaseFalling
}

func (e *Engine) active() bool {
	return e.phase == PhaseFalling && !e.paused
}

func (e *Engine) shift(dx, dy int) bool {
	if !e.active() || !e.board.IsValidMove(e.current, dx, dy) {
		return false
	}
	e.current = e.current.Moved(dx, dy)
	return true
}

// MoveLeft shifts the piece one column left if it fits.
func (e *Engine) MoveLeft() { e.shift(-1, 0) }

// MoveRight shifts the piece one column right if it fits.
func (e *Engine) MoveRight() { e.shift(1, 0) }

// SoftDrop moves the piece one row down if it fits. It never locks.
func (e *Engine) SoftDrop() { e.shift(0, 1) }

// Rotate turns the piece clockwise. The anchor column is first pulled back
// inside the walls for the rotated width; if the result still collides the
// piece is left as it was.
func (e *Engine) Rotate() {
	if !e.active() {
		return
	}
	shape := e.current.Rotated()
	x := core.Clamp(e.current.X, 0, e.board.Width()-shape.Cols())
	turned := e.current.WithShape(shape, x)
	if e.board.IsValidMove(turned, 0, 0) {
		e.current = turned
	}
}

// HardDrop drops the piece as far as it goes and locks it immediately.
// The gravity timer restarts for the next piece.
func (e *Engine) HardDrop() {
	if !e.active() {
		return
	}
	for e.shift(0, 1) {
	}
	e.lock()
	e.lastFall = e.clock
}

// TogglePause flips the pause flag. It has no effect once the game is over.
func (e *Engine) TogglePause() {
	if e.phase == PhaseGameOver {
		return
	}
	e.paused = !e.paused
}

// Advance feeds the monotonic session time. When a full fall interval has
// passed since the last fall the piece drops one row or locks. Time spent
// paused is skipped: the reference instant moves forward with it.
func (e *Engine) Advance(now time.Duration) {
	if now < e.clock {
		now = e.clock
	}
	delta := now - e.clock
	e.clock = now

	if e.phase == PhaseGameOver {
		return
	}
	if e.paused {
		e.lastFall += delta
		return
	}
	if now-e.lastFall >= e.fallInterval {
		e.lastFall = now
		e.gravity()
	}
}

// GravityTick performs one gravity step immediately, as if the fall
// interval had elapsed.
func (e *Engine) GravityTick() {
	if !e.active() {
		return
	}
	e.gravity()
}

func (e *Engine) gravity() {
	if e.shift(0, 1) {
		return
	}
	e.lock()
}

// lock transfers the piece into the board, scores cleared rows and spawns
// the next piece.
func (e *Engine) lock() {
	e.phase = PhaseLocking
	e.board.Place(e.current)

	if n := e.board.ClearCompletedRows(); n > 0 {
		e.score += n * e.settings.ScorePerLine
		e.lines += n
		e.fallInterval = max(e.settings.MinFallInterval, e.fallInterval-e.settings.SpeedStep)
	}

	if e.score > e.highScore {
		e.highScore = e.score
		e.store.Save(e.highScore)
	}

	e.spawn()
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// HighScore returns the best score seen, including this game.
func (e *Engine) HighScore() int { return e.highScore }

// Lines returns the total number of rows cleared this game.
func (e *Engine) Lines() int { return e.lines }

// FallInterval returns the current delay between gravity steps.
func (e *Engine) FallInterval() time.Duration { return e.fallInterval }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.paused }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.phase == PhaseGameOver }

// Phase returns the state machine position.
func (e *Engine) Phase() Phase { return e.phase }

// Current returns the falling piece. After game over it is the piece that
// failed to spawn.
func (e *Engine) Current() Piece { return e.current }

// Board exposes the grid for read-only queries.
func (e *Engine) Board() *Board { return e.board }
