package engine

import (
	"iter"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Point is a board coordinate: X is the column, Y the row (0 at the top).
type Point struct {
	X, Y int
}

// Piece is a shape positioned on the board. X/Y anchor the top-left corner
// of the shape's bounding box. Pieces are values: moving or rotating
// produces a new Piece and never touches the one it came from.
type Piece struct {
	shape Shape
	X, Y  int
}

// NewPiece places shape with its bounding box anchored at (x, y).
func NewPiece(shape Shape, x, y int) Piece {
	return Piece{shape: shape, X: x, Y: y}
}

// Shape returns the current orientation.
func (p Piece) Shape() Shape { return p.shape }

// Kind returns the catalog kind the piece was spawned from.
func (p Piece) Kind() Kind { return p.shape.kind }

// Color is derived from the originating catalog shape.
func (p Piece) Color() core.Color { return ColorFor(p.shape.kind) }

// Width returns the bounding box width.
func (p Piece) Width() int { return p.shape.Cols() }

// Height returns the bounding box height.
func (p Piece) Height() int { return p.shape.Rows() }

// Rotated returns the clockwise rotation of the current shape. Whether the
// rotation is legal is for the board to decide.
func (p Piece) Rotated() Shape {
	return p.shape.Rotate()
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	return Piece{shape: p.shape, X: p.X + dx, Y: p.Y + dy}
}

// WithShape returns a copy using shape and anchor column x.
func (p Piece) WithShape(shape Shape, x int) Piece {
	return Piece{shape: shape, X: x, Y: p.Y}
}

// Cells yields the board coordinates of every occupied cell, row by row.
// The sequence can be ranged over any number of times.
func (p Piece) Cells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r, row := range p.shape.cells {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(Point{X: p.X + c, Y: p.Y + r}) {
					return
				}
			}
		}
	}
}
