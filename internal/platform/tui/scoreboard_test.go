package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{endAfter: 1} })
}

var keyX = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}

func newTestScoreboard(t *testing.T) ScoreboardModel {
	t.Helper()
	_, store := newTestModel(t, &scriptedGame{endAfter: 100})
	for _, s := range []struct{ score, lines int }{{300, 3}, {1200, 12}} {
		if _, err := store.SaveScore("scripted", s.score, s.lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return NewScoreboardModel(store, 100, 30)
}

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestScoreboardLoadsSelectedMode(t *testing.T) {
	m := newTestScoreboard(t)

	if m.mode() != "scripted" {
		t.Fatalf("mode = %q, want scripted", m.mode())
	}
	if len(m.scores) != 2 || m.scores[0].Score != 1200 {
		t.Fatalf("scores = %+v, want best first", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 || m.stats.TotalLines != 15 {
		t.Errorf("stats = %+v, want 2 games and 15 lines", m.stats)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Scripted", "1200", "Lines  15"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardClearNeedsConfirmation(t *testing.T) {
	m := newTestScoreboard(t)

	m = scoreboardUpdate(t, m, keyX)
	if !m.arming || len(m.scores) != 2 {
		t.Fatal("first x should only arm the clear")
	}

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.arming {
		t.Fatal("any other key should disarm")
	}

	m = scoreboardUpdate(t, m, keyX)
	m = scoreboardUpdate(t, m, keyX)
	if len(m.scores) != 0 {
		t.Fatalf("scores after clear = %+v", m.scores)
	}
	left, err := m.store.TopScores("scripted", 10)
	if err != nil || len(left) != 0 {
		t.Errorf("store still has %d scores (err %v)", len(left), err)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty mode should say so")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	m = scoreboardUpdate(t, m, keyX)
	if m.arming {
		t.Error("clear should not arm without a store")
	}
	if !strings.Contains(m.View(), "No games yet") {
		t.Error("stats box should show an empty state")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := newTestScoreboard(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should leave the scoreboard")
	}
}
