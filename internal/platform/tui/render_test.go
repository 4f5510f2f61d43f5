package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.ColorCyan)
	s.SetColored(3, 0, '█', core.ColorCyan)
	s.SetColored(0, 1, '█', core.ColorOrange)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != s.Row(0) || lines[1] != s.Row(1) {
		t.Errorf("rendered %q, want %q", lines, []string{s.Row(0), s.Row(1)})
	}
}
