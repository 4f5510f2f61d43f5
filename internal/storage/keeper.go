package storage

import (
	"github.com/charmbracelet/log"
)

// Keeper adapts the best_scores table to the engine's high score port.
// Failures are logged and otherwise ignored: a broken database must not
// interrupt a game.
type Keeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Keeper returns a high score keeper for gameID. A nil logger uses the
// package default.
func (s *Store) Keeper(gameID string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Keeper{store: s, gameID: gameID, logger: logger}
}

// Load returns the best score, or 0 when it cannot be read.
func (k *Keeper) Load() int {
	score, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.logger.Warn("cannot load high score", "game", k.gameID, "err", err)
		return 0
	}
	return score
}

// Save records score as the new best.
func (k *Keeper) Save(score int) {
	if err := k.store.SetBestScore(k.gameID, score); err != nil {
		k.logger.Warn("cannot save high score", "game", k.gameID, "score", score, "err", err)
	}
}
