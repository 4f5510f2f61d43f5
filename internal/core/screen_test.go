package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q, want two blank rows", got)
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 2)

	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should give an empty screen, got %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestScreenSetAndGet(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"inside", 1, 1, Cell{Rune: '#', Color: ColorRed}},
		{"left of screen", -1, 0, blankCell},
		{"below screen", 0, 3, blankCell},
		{"right of screen", 3, 0, blankCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(3, 3)
			s.SetColored(tt.x, tt.y, '#', ColorRed)
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreenOutOfBoundsWritesDoNotWrap(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColored(3, 0, 'x', ColorRed) // would land on (0, 1) if wrapped
	s.SetColored(-1, 1, 'x', ColorRed)

	if strings.ContainsRune(s.String(), 'x') {
		t.Errorf("out-of-bounds write leaked into the buffer:\n%s", s)
	}
}

func TestScreenPaintAndTint(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "ab")
	s.Paint(2, 0, 5, '█', ColorCyan) // clipped after 4 cells
	s.Tint(0, 0, 2, ColorGreen)

	if got := s.Row(0); got != "ab████" {
		t.Errorf("Row(0) = %q, want %q", got, "ab████")
	}
	for x := range 2 {
		if c := s.GetCell(x, 0); c.Color != ColorGreen {
			t.Errorf("cell %d color = %v, want green", x, c.Color)
		}
	}
	if c := s.GetCell(5, 0); c.Color != ColorCyan {
		t.Errorf("painted cell color = %v, want cyan", c.Color)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(2, 0, "Tetris")

	if got := s.Row(0); got != "  Tet" {
		t.Errorf("Row(0) = %q, want %q", got, "  Tet")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 4, 3))

	want := []string{
		"┌──┐ ",
		"│  │ ",
		"└──┘ ",
		"     ",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3))

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("a box narrower than 2 cells should draw nothing, got:\n%s", s)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 1, "xxxx")
	s.Fill(NewRect(1, 0, 2, 3), Cell{Rune: ' '})

	if got := s.Row(1); got != "x  x" {
		t.Errorf("Row(1) = %q, want %q", got, "x  x")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawText(0, 0, "abcd")
	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "  \n  \n  " {
		t.Errorf("String() after resize = %q", got)
	}

	s.Resize(5, 1)
	s.SetColored(4, 0, 'z', ColorNone)
	if got := s.Row(0); got != "    z" {
		t.Errorf("Row(0) after growing = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)

	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want blank", got)
	}
}
