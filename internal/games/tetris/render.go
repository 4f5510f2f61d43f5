package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW    = 2  // terminal columns per board cell
	panelGap = 2  // space between the well and the side panel
	panelW   = 16 // side panel width
	block    = '█'
	vacant   = '·'
)

// requiredSize returns the smallest terminal that fits the layout.
func (g *Game) requiredSize() (w, h int) {
	return g.settings.Width*cellW + 2 + panelGap + panelW, g.settings.Height + 2
}

// layout returns the well box, border included, centered on screen.
func (g *Game) layout(dst *core.Screen) core.Rect {
	w, h := g.requiredSize()
	area := dst.Bounds().Centered(w, h)
	return core.NewRect(area.X, area.Y, g.settings.Width*cellW+2, h)
}

// Render draws the well, the falling piece, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.requiredSize()
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	snap := g.eng.Snapshot()
	well := g.layout(dst)
	dst.DrawBox(well)

	for y, row := range snap.Grid {
		for x, c := range row {
			drawCell(dst, well, x, y, c)
		}
	}
	// After game over the piece is the one that failed to spawn.
	if !snap.Over {
		for _, p := range snap.Piece {
			if p.Y >= 0 {
				drawCell(dst, well, p.X, p.Y, snap.PieceColor)
			}
		}
	}

	g.renderPanel(dst, well.Right()+panelGap, well.Y, snap)

	switch {
	case snap.Over:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case snap.Paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell paints board cell (x, y) inside the well border.
func drawCell(dst *core.Screen, well core.Rect, x, y int, c core.Color) {
	inner := well.Inset(1)
	sx := inner.X + x*cellW
	sy := inner.Y + y
	if c == engine.Empty {
		dst.SetColored(sx+cellW-1, sy, vacant, core.ColorGray)
		return
	}
	dst.Paint(sx, sy, cellW, block, c)
}

func (g *Game) renderPanel(dst *core.Screen, x, y int, snap engine.Snapshot) {
	lines := []string{
		g.Title(),
		"",
		"Score",
		fmt.Sprintf("  %d", snap.Score),
		"Best",
		fmt.Sprintf("  %d", snap.HighScore),
		"Lines",
		fmt.Sprintf("  %d", snap.Lines),
		"Speed",
		fmt.Sprintf("  %dms", snap.FallInterval.Milliseconds()),
		"",
		"←/→   move",
		"↑     rotate",
		"↓     soft drop",
		"space drop",
		"p     pause",
		"q     quit",
	}
	for i, line := range lines {
		if i >= dst.Height()-y {
			break
		}
		dst.DrawText(x, y+i, line)
	}

	// Title in the falling piece's color.
	dst.Tint(x, y, utf8.RuneCountInString(g.Title()), snap.PieceColor)
}

// drawOverlay draws a bordered message box centered on screen.
func drawOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	box := dst.Bounds().Centered(width+4, len(lines)+2)
	dst.Fill(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)

	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
