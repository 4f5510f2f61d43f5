package engine

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Empty marks a vacant board cell.
const Empty = core.ColorNone

// Board is the fixed-size grid of locked cells, indexed [row][col].
type Board struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewBoard creates an empty width×height board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the color at (x, y), or Empty outside the grid.
func (b *Board) At(x, y int) core.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty
	}
	return b.cells[y][x]
}

// Rows returns a deep copy of the grid for rendering.
func (b *Board) Rows() [][]core.Color {
	out := make([][]core.Color, b.height)
	for y, row := range b.cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}

// IsValidMove reports whether p shifted by (dx, dy) fits. Columns must stay
// within [0, width) and rows below height. Rows above the top edge are
// allowed and never collide, so pieces can spawn or rotate partly
// off-board.
func (b *Board) IsValidMove(p Piece, dx, dy int) bool {
	for c := range p.Cells() {
		x, y := c.X+dx, c.Y+dy
		if x < 0 || x >= b.width || y >= b.height {
			return false
		}
		if y >= 0 && b.cells[y][x] != Empty {
			return false
		}
	}
	return true
}

// Place writes p's color into every cell it covers. The caller must have
// checked IsValidMove(p, 0, 0). Cells above the top edge have no storage
// and are dropped.
func (b *Board) Place(p Piece) {
	color := p.Color()
	for c := range p.Cells() {
		if c.Y < 0 || c.Y >= b.height || c.X < 0 || c.X >= b.width {
			continue
		}
		b.cells[c.Y][c.X] = color
	}
}

// ClearCompletedRows removes every full row, shifts the rest down and adds
// empty rows at the top. It returns how many rows were removed.
func (b *Board) ClearCompletedRows() int {
	kept := make([][]core.Color, 0, b.height)
	for _, row := range b.cells {
		if !rowComplete(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]core.Color, cleared, b.height)
	for y := range fresh {
		fresh[y] = make([]core.Color, b.width)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowComplete(row []core.Color) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// fill paints row y with color, leaving the listed columns empty. Only
// tests seed boards this way; play changes the grid through Place and
// ClearCompletedRows.
func (b *Board) fill(y int, color core.Color, except ...int) {
	if y < 0 || y >= b.height {
		return
	}
	for x := range b.width {
		b.cells[y][x] = color
	}
	for _, x := range except {
		if x >= 0 && x < b.width {
			b.cells[y][x] = Empty
		}
	}
}

// String renders the grid with '#' for locked cells and '.' for empty ones.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
