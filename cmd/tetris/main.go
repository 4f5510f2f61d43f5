// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris menu              - Pick a mode and difficulty interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores <mode>     - Show high scores for a mode
//	tetris scoreboard        - Browse all scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.tetris/scores.db)
//	--highscore <path>   - Set high score file (default: ~/.tetris/highscore.txt)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogLevel  string

	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block game. Steer and rotate the pieces,
complete rows to clear them, and keep the stack below the top.

Available commands:
  list        - Show the game modes
  play        - Play a mode directly
  menu        - Interactive mode and difficulty picker
  serve       - Start SSH server for remote play
  scores      - View high scores
  scoreboard  - Browse scores interactively

Examples:
  tetris play
  tetris play tetris_relaxed --difficulty easy
  tetris menu
  tetris serve --ssh :2222
  tetris scores tetris`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "tetris",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the score database. A failure is logged and yields nil:
// games still run, they just keep no history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// wireHighScores points the game at the high score backend named in the
// config. The sqlite backend needs store; without it the file backend is
// used instead.
func wireHighScores(store *storage.Store, logger *log.Logger) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", flagConfig, "err", err)
	}

	if cfg.HighScore.Backend == config.BackendSQLite && store != nil {
		logger.Debug("high scores in database", "path", flagDBPath)
		tetris.SetHighScoreStore(func(gameID string) engine.HighScoreStore {
			return store.Keeper(gameID, logger)
		})
		return
	}

	path := flagHighScore
	if path == "" {
		path = cfg.HighScorePath()
	}
	file, err := storage.NewHighScoreFile(path, logger)
	if err != nil {
		logger.Warn("high scores will not persist", "path", path, "err", err)
		tetris.SetHighScoreStore(nil)
		return
	}
	logger.Debug("high scores in file", "path", file.Path())

	// Each mode gets its own file next to the configured one, except the
	// default mode which uses the path as given.
	tetris.SetHighScoreStore(func(gameID string) engine.HighScoreStore {
		if gameID == tetris.IDMarathon {
			return file
		}
		f, err := storage.NewHighScoreFile(modePath(path, gameID), logger)
		if err != nil {
			logger.Warn("high scores will not persist", "game", gameID, "err", err)
			return nil
		}
		return f
	})
}

// terminalConfig sizes the runtime config from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// modePath derives a per-mode file from path:
// highscore.txt becomes highscore_tetris_relaxed.txt.
func modePath(path, gameID string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + gameID + ext
}
