package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right, Bottom = %d, %d, want 6, 8", r.Right(), r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		n    int
		want Rect
	}{
		{"border", NewRect(0, 0, 22, 22), 1, NewRect(1, 1, 20, 20)},
		{"zero", NewRect(5, 5, 3, 3), 0, NewRect(5, 5, 3, 3)},
		{"collapses", NewRect(0, 0, 3, 1), 1, NewRect(1, 1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.n); got != tt.want {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.n, got, tt.want)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		w, h int
		want Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 40, 22, NewRect(20, 1, 40, 22)},
		{"offset parent", NewRect(10, 10, 10, 10), 4, 4, NewRect(13, 13, 4, 4)},
		{"too large", NewRect(0, 0, 30, 10), 40, 22, NewRect(0, 0, 40, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Centered(tt.w, tt.h); got != tt.want {
				t.Errorf("Centered(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 6, 6, 6},
		{3, 7, 4, 7}, // lo wins
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
