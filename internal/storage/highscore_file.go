package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreFile keeps a single best score as plain decimal text. It is
// safe for concurrent use, so SSH sessions can share one file.
type HighScoreFile struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// NewHighScoreFile returns a store backed by path (a leading ~ is
// expanded). The file is created on the first Save. A nil logger uses
// the package default.
func NewHighScoreFile(path string, logger *log.Logger) (*HighScoreFile, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreFile{path: path, logger: logger}, nil
}

// Path returns the backing file location.
func (f *HighScoreFile) Path() string { return f.path }

// Load reads the stored score. A missing, empty or malformed file yields 0.
func (f *HighScoreFile) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Save records score if it beats the stored one, so sessions sharing the
// file never lower it. Errors are logged, never returned.
func (f *HighScoreFile) Save(score int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if score <= f.read() {
		return
	}
	if err := f.write(score); err != nil {
		f.logger.Warn("cannot save high score", "path", f.path, "score", score, "err", err)
	}
}

// read expects f.mu to be held.
func (f *HighScoreFile) read() int {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	if err != nil {
		f.logger.Warn("cannot read high score", "path", f.path, "err", err)
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		f.logger.Warn("ignoring malformed high score file", "path", f.path)
		return 0
	}
	return score
}

// write replaces the file atomically so a crash never leaves it half written.
func (f *HighScoreFile) write(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}
