package main

import "testing"

func TestModePath(t *testing.T) {
	tests := []struct {
		path   string
		gameID string
		want   string
	}{
		{"/home/u/.tetris/highscore.txt", "tetris_relaxed", "/home/u/.tetris/highscore_tetris_relaxed.txt"},
		{"best", "tetris_relaxed", "best_tetris_relaxed"},
		{"./scores/hs.dat", "x", "./scores/hs_x.dat"},
	}

	for _, tt := range tests {
		if got := modePath(tt.path, tt.gameID); got != tt.want {
			t.Errorf("modePath(%q, %q) = %q, want %q", tt.path, tt.gameID, got, tt.want)
		}
	}
}
