package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or the marathon mode by default.

Controls:
  Left/Right, A/D, H/L  - Move
  Down, S, J            - Soft drop
  Up, W, K, X           - Rotate
  Space                 - Hard drop
  P                     - Pause
  R                     - Restart (after game over)
  Esc/B                 - Back (while paused or after game over)
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slow start, speeds up with every clearing lock
  normal - Config's starting speed
  hard   - Fast start
  fixed  - Config's starting speed, never speeds up

Examples:
  tetris play
  tetris play tetris_relaxed
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := tetris.IDMarathon
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, ok := config.ParseDifficulty(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		preset = p
	}

	logger := newLogger()
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)

	store := openStore(logger)
	wireHighScores(store, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
