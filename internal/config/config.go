// Package config provides YAML-based game configuration loading and
// difficulty presets for tetris.
package config

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Speed     SpeedConfig     `yaml:"speed"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	HighScore HighScoreConfig `yaml:"highscore"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines gravity timing in milliseconds.
type SpeedConfig struct {
	InitialMs int `yaml:"initial_ms"` // delay between falls at the start
	MinMs     int `yaml:"min_ms"`     // floor the delay never drops below
	StepMs    int `yaml:"step_ms"`    // taken off once per lock that clears rows
}

// ScoringConfig defines points awarded for cleared rows.
type ScoringConfig struct {
	PerLine int `yaml:"per_line"`
}

// HighScoreConfig selects where the best score is kept.
type HighScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // file backend only; empty means the default location
}

// High score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a flag value to a preset. Unknown values yield
// normal and false.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// InitialMsForPreset returns the starting fall delay for a preset.
func InitialMsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 700
	case DifficultyHard:
		return 300
	default:
		return 500
	}
}

// IsFixedPreset returns true if the preset disables speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
