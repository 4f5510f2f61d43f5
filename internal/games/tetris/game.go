// Package tetris hosts the falling-block engine as an arcade game: it
// registers the playable modes, turns fixed-rate ticks into session time,
// maps platform actions to engine commands and draws the well.
package tetris

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the speed rules.
type Mode string

const (
	// ModeMarathon speeds up after every lock that clears rows.
	ModeMarathon Mode = "marathon"
	// ModeRelaxed keeps the starting speed for the whole game.
	ModeRelaxed Mode = "relaxed"
)

// Game ids as registered.
const (
	IDMarathon = "tetris"
	IDRelaxed  = "tetris_relaxed"
)

// HighScoreFactory returns the high score store for a game id.
type HighScoreFactory func(gameID string) engine.HighScoreStore

var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	highScores       HighScoreFactory
)

// SetConfigPath sets a custom config file. Empty uses the default search.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset applies a preset to every game created afterwards.
// Empty keeps the config file's speed.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetHighScoreStore sets where new games load and save their best score.
// Nil keeps high scores in memory.
func SetHighScoreStore(f HighScoreFactory) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	highScores = f
}

// loadConfig reads the config file and applies override, or the
// package-level preset when override is empty.
func loadConfig(override config.DifficultyPreset) config.TetrisConfig {
	settingsMu.RLock()
	path, preset := configPath, difficultyPreset
	settingsMu.RUnlock()

	if override != "" {
		preset = override
	}

	cfg, err := config.LoadTetris(path)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	return cfg
}

func highScoreStore(gameID string) engine.HighScoreStore {
	settingsMu.RLock()
	f := highScores
	settingsMu.RUnlock()

	if f == nil {
		return nil
	}
	return f(gameID)
}

// Settings converts a config into engine rules for mode.
func Settings(cfg config.TetrisConfig, mode Mode) engine.Settings {
	s := engine.Settings{
		Width:               cfg.Board.Width,
		Height:              cfg.Board.Height,
		InitialFallInterval: time.Duration(cfg.Speed.InitialMs) * time.Millisecond,
		MinFallInterval:     time.Duration(cfg.Speed.MinMs) * time.Millisecond,
		SpeedStep:           time.Duration(cfg.Speed.StepMs) * time.Millisecond,
		ScorePerLine:        cfg.Scoring.PerLine,
	}
	if mode == ModeRelaxed {
		s.SpeedStep = 0
	}
	return s
}

// Game adapts an engine to the arcade platform.
type Game struct {
	mode       Mode
	difficulty config.DifficultyPreset
	settings   engine.Settings
	store      engine.HighScoreStore
	eng        *engine.Engine
	rng        *rand.Rand
	newSource  func(seed int64) engine.ShapeSource // nil means uniform

	tick     uint64
	tickRate int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewRelaxed creates a game that never speeds up.
func NewRelaxed() *Game {
	return &Game{mode: ModeRelaxed}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDRelaxed, func() registry.Game {
		return NewRelaxed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRelaxed {
		return IDRelaxed
	}
	return IDMarathon
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRelaxed {
		return "Tetris (Relaxed)"
	}
	return "Tetris"
}

// SetDifficulty overrides the package-level preset for this instance, so
// concurrent sessions can pick their own. Takes effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.difficulty = preset
}

// Reset starts a new game with freshly loaded config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.settings = Settings(loadConfig(g.difficulty), g.mode)
	g.store = highScoreStore(g.ID())
	g.start(cfg)
}

// start builds the engine from the current settings and store.
func (g *Game) start(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.eng = engine.New(g.settings, g.source(g.rng.Int63()), g.store)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) source(seed int64) engine.ShapeSource {
	if g.newSource != nil {
		return g.newSource(seed)
	}
	return engine.NewUniformSource(seed)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.eng == nil {
		return
	}
	minW, minH := g.requiredSize()
	g.tooSmall = w < minW || h < minH
}

// elapsed converts the tick count into session time.
func (g *Game) elapsed() time.Duration {
	return time.Duration(g.tick) * time.Second / time.Duration(g.tickRate)
}

// Step applies the frame's actions in order, then advances gravity by one
// tick of session time. Session time stops while the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng.Over() {
		if in.Has(core.ActionRestart) {
			g.start(core.RuntimeConfig{
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: g.tickRate,
				Seed:     g.rng.Int63(),
			})
		}
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	for _, a := range in.Actions() {
		g.apply(a)
	}
	g.eng.Advance(g.elapsed())

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.eng.TogglePause()
	case core.ActionLeft:
		g.eng.MoveLeft()
	case core.ActionRight:
		g.eng.MoveRight()
	case core.ActionDown:
		g.eng.SoftDrop()
	case core.ActionRotate:
		g.eng.Rotate()
	case core.ActionDrop:
		g.eng.HardDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.eng.Score(),
		HighScore: g.eng.HighScore(),
		GameOver:  g.eng.Over(),
		Paused:    g.eng.Paused(),
	}
}

// Lines returns the rows cleared this game.
func (g *Game) Lines() int { return g.eng.Lines() }

// Engine exposes the running engine.
func (g *Game) Engine() *engine.Engine { return g.eng }
