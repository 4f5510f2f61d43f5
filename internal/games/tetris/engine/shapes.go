// Package engine implements the falling-block puzzle rules: the shape
// catalog, pieces, the board grid, and the game state machine that drives
// one piece at a time against one board.
//
// Nothing in here knows about terminals, clocks or files. The session loop
// supplies elapsed time and commands, and reads snapshots back.
package engine

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies a catalog shape by its position in the catalog.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindS
	KindZ
	KindL
	KindJ
	KindT

	kindCount
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = int(kindCount)

var kindNames = [...]string{"I", "O", "S", "Z", "L", "J", "T"}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "?"
}

// Shape is an immutable occupancy matrix. Rotation yields a new Shape of the
// same Kind; the matrix backing a Shape is never written after construction.
type Shape struct {
	kind  Kind
	cells [][]bool
}

func mustShape(k Kind, rows ...string) Shape {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, ch := range row {
			cells[y][x] = ch == '#'
		}
	}
	return Shape{kind: k, cells: cells}
}

var catalog = [ShapeCount]Shape{
	mustShape(KindI, "####"),
	mustShape(KindO, "##", "##"),
	mustShape(KindS, ".##", "##."),
	mustShape(KindZ, "##.", ".##"),
	mustShape(KindL, "#..", "###"),
	mustShape(KindJ, "..#", "###"),
	mustShape(KindT, ".#.", "###"),
}

var palette = [ShapeCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorBlue,
	KindS: core.ColorOrange,
	KindZ: core.ColorYellow,
	KindL: core.ColorGreen,
	KindJ: core.ColorRed,
	KindT: core.ColorMagenta,
}

// AllShapes returns the catalog shapes in catalog order.
func AllShapes() []Shape {
	out := make([]Shape, ShapeCount)
	copy(out, catalog[:])
	return out
}

// ShapeOf returns the spawn orientation of the given kind.
// Unknown kinds fall back to I.
func ShapeOf(k Kind) Shape {
	if k < 0 || k >= kindCount {
		return catalog[KindI]
	}
	return catalog[k]
}

// ColorFor returns the display color assigned to a catalog position.
func ColorFor(k Kind) core.Color {
	if k < 0 || k >= kindCount {
		return core.ColorWhite
	}
	return palette[k]
}

// Kind returns the catalog position this shape came from.
func (s Shape) Kind() Kind { return s.kind }

// Rows returns the matrix height.
func (s Shape) Rows() int { return len(s.cells) }

// Cols returns the matrix width.
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the local cell (row, col) is occupied.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return false
	}
	return s.cells[row][col]
}

// Rotate returns the shape turned 90° clockwise: the transpose of the
// matrix with its row order reversed.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make([][]bool, cols)
	for r := range cols {
		out[r] = make([]bool, rows)
		for c := range rows {
			out[r][c] = s.cells[rows-1-c][r]
		}
	}
	return Shape{kind: s.kind, cells: out}
}

// Equal reports whether two shapes have the same kind and matrix.
func (s Shape) Equal(o Shape) bool {
	if s.kind != o.kind || s.Rows() != o.Rows() || s.Cols() != o.Cols() {
		return false
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix using '#' and '.', rows separated by '/'.
func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			b.WriteByte('/')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
