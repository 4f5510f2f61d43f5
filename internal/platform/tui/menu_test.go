package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuDifficultyCycles(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyType
		want config.DifficultyPreset
	}{
		{"default", nil, config.DifficultyNormal},
		{"right", []tea.KeyType{tea.KeyRight}, config.DifficultyHard},
		{"left", []tea.KeyType{tea.KeyLeft}, config.DifficultyEasy},
		{"wraps left", []tea.KeyType{tea.KeyLeft, tea.KeyLeft}, config.DifficultyFixed},
		{"wraps right", []tea.KeyType{tea.KeyRight, tea.KeyRight, tea.KeyRight}, config.DifficultyEasy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig())
			for _, k := range tt.keys {
				m = menuUpdate(t, m, tea.KeyMsg{Type: k})
			}
			if got := m.Difficulty(); got != tt.want {
				t.Errorf("Difficulty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMenuResult(t *testing.T) {
	t.Run("select", func(t *testing.T) {
		m := NewMenuModel(core.DefaultConfig())
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		r := m.Result()
		if r.GameID != "scripted" || r.Difficulty != config.DifficultyHard || r.Quit {
			t.Errorf("Result() = %+v, want scripted on hard", r)
		}
	})

	t.Run("scoreboard", func(t *testing.T) {
		m := menuUpdate(t, NewMenuModel(core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
		if r := m.Result(); !r.WantsScoreboard || r.Quit {
			t.Errorf("Result() = %+v, want scoreboard", r)
		}
	})

	t.Run("quit", func(t *testing.T) {
		m := menuUpdate(t, NewMenuModel(core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if r := m.Result(); !r.Quit || r.GameID != "" {
			t.Errorf("Result() = %+v, want quit", r)
		}
	})

	t.Run("resize", func(t *testing.T) {
		m := menuUpdate(t, NewMenuModel(core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
		if c := m.Result().Config; c.ScreenW != 120 || c.ScreenH != 40 {
			t.Errorf("config = %dx%d, want 120x40", c.ScreenW, c.ScreenH)
		}
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuGameMenu(t *testing.T) {
	_, store := newTestModel(t, &scriptedGame{endAfter: 100})
	m := NewSessionModel(store, core.DefaultConfig(), log.New(io.Discard))

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatalf("view = %v, want game", m.view)
	}

	// scriptedGame ends on its first step; the score goes to the shared store.
	m = sessionUpdate(t, m, TickMsg{})
	if scores, _ := store.TopScores("scripted", 10); len(scores) != 1 {
		t.Errorf("got %d stored scores, want 1", len(scores))
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.view != viewMenu || m.quitting {
		t.Fatalf("back after game over should return to the menu, view = %v", m.view)
	}
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Error("returning to the menu must not end the session")
		}
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), log.New(io.Discard))

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatalf("view = %v, want scoreboard", m.view)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, want menu", m.view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
