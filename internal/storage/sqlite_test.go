package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", s, s/100); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris_relaxed", 500, 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Lines != 2 {
		t.Errorf("Expected 2 lines on the best run, got %d", scores[0].Lines)
	}

	relaxed, err := store.TopScores("tetris_relaxed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(relaxed) != 1 {
		t.Errorf("Expected 1 relaxed score, got %d", len(relaxed))
	}
}

func TestStoreRunIDsAreUnique(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveScore("tetris", 10, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	b, err := store.SaveScore("tetris", 10, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("run ids %q and %q should be distinct and non-empty", a.RunID, b.RunID)
	}

	all, _ := store.AllScores("tetris")
	if len(all) != 2 || all[0].RunID != a.RunID {
		t.Errorf("equal scores should list in insertion order: %v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("tetris", (i+1)*100, i)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100, 1)
	store.SaveScore("tetris", 300, 3)
	store.SaveScore("tetris", 200, 2)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestScoreNeverRegresses(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestScore("tetris"); err != nil || best != 0 {
		t.Fatalf("BestScore() = %d, %v; want 0, nil", best, err)
	}

	steps := []struct {
		set  int
		want int
	}{
		{300, 300},
		{100, 300},
		{400, 400},
	}
	for _, s := range steps {
		if err := store.SetBestScore("tetris", s.set); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", s.set, err)
		}
		best, err := store.BestScore("tetris")
		if err != nil {
			t.Fatalf("BestScore() failed: %v", err)
		}
		if best != s.want {
			t.Errorf("after SetBestScore(%d) best = %d, want %d", s.set, best, s.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1)
	store.SaveScore("tetris", 200, 2)
	store.SaveScore("tetris_relaxed", 300, 3)
	store.SetBestScore("tetris", 200)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("tetris", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore("tetris"); best != 0 {
		t.Errorf("Expected best score reset, got %d", best)
	}
	if scores, _ := store.TopScores("tetris_relaxed", 10); len(scores) != 1 {
		t.Errorf("Relaxed scores should not be affected by clearing tetris")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("tetris", i*10, 0)
	}

	scores, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1)
	store.SaveScore("tetris", 300, 3)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalLines != 4 {
		t.Errorf("stats = %+v", *stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}

	empty, err := store.GetGameStats("tetris_relaxed")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", *empty)
	}
}

func TestKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)

	k := store.Keeper("tetris", nil)
	if k.Load() != 0 {
		t.Errorf("fresh keeper Load() = %d, want 0", k.Load())
	}

	k.Save(700)
	if got := store.Keeper("tetris", nil).Load(); got != 700 {
		t.Errorf("Load() = %d, want 700", got)
	}
	if got := store.Keeper("tetris_relaxed", nil).Load(); got != 0 {
		t.Errorf("keepers should be per game, got %d", got)
	}
}

func TestKeeperClosedStore(t *testing.T) {
	store := openTestStore(t)
	k := store.Keeper("tetris", nil)
	store.Close()

	// Failures are swallowed.
	k.Save(10)
	if k.Load() != 0 {
		t.Error("closed store should load as 0")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.tetris/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".tetris", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}
