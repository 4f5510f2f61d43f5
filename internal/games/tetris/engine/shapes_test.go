package engine

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCatalog(t *testing.T) {
	shapes := AllShapes()
	if len(shapes) != 7 {
		t.Fatalf("AllShapes() returned %d shapes, want 7", len(shapes))
	}

	want := []string{"####", "##/##", ".##/##.", "##./.##", "#../###", "..#/###", ".#./###"}
	for i, s := range shapes {
		if s.Kind() != Kind(i) {
			t.Errorf("shape %d has kind %v", i, s.Kind())
		}
		if s.String() != want[i] {
			t.Errorf("shape %v = %s, want %s", s.Kind(), s, want[i])
		}
	}
}

func TestColorForIsKeyedByPosition(t *testing.T) {
	seen := make(map[core.Color]Kind)
	for _, s := range AllShapes() {
		c := ColorFor(s.Kind())
		if c == Empty {
			t.Errorf("kind %v has no color", s.Kind())
		}
		if other, dup := seen[c]; dup {
			t.Errorf("kinds %v and %v share color %v", other, s.Kind(), c)
		}
		seen[c] = s.Kind()

		// Rotation keeps the catalog identity and therefore the color
		if ColorFor(s.Rotate().Kind()) != c {
			t.Errorf("rotated %v changed color", s.Kind())
		}
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindI, "#/#/#/#"},
		{KindO, "##/##"},
		{KindS, "#./##/.#"},
		{KindZ, ".#/##/#."},
		{KindL, "##/#./#."},
		{KindJ, "#./#./##"},
		{KindT, "#./##/#."},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got := ShapeOf(tc.kind).Rotate()
			if got.String() != tc.want {
				t.Errorf("Rotate(%v) = %s, want %s", tc.kind, got, tc.want)
			}
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range AllShapes() {
		r := s
		for range 4 {
			r = r.Rotate()
		}
		if !r.Equal(s) {
			t.Errorf("%v rotated four times = %s, want %s", s.Kind(), r, s)
		}
	}

	o := ShapeOf(KindO)
	if !o.Rotate().Equal(o) {
		t.Error("O should be a fixed point of rotation")
	}
}

func TestRotateDoesNotMutateCatalog(t *testing.T) {
	before := ShapeOf(KindT).String()
	_ = ShapeOf(KindT).Rotate().Rotate()
	if ShapeOf(KindT).String() != before {
		t.Error("rotation modified the catalog shape")
	}
}
