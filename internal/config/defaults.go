package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			InitialMs: 500,
			MinMs:     100,
			StepMs:    20,
		},
		Scoring: ScoringConfig{
			PerLine: 100,
		},
		HighScore: HighScoreConfig{
			Backend: BackendFile,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
