package match3

import (
	"math"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth  = 4 // characters per board cell
	cellHeight = 2 // rows per board cell
	hudHeight  = 2
	footHeight = 1

	boardWidth  = engine.Size*cellWidth + 2 // +2 for the frame
	boardHeight = engine.Size*cellHeight + 2

	minScreenW = boardWidth
	minScreenH = hudHeight + boardHeight + footHeight
)

// Layout places the board on the screen and maps between board and
// screen coordinates.
type Layout struct {
	Frame    core.Rect // board including its border
	TooSmall bool
}

// NewLayout centers the board on a w x h screen, below the HUD.
func NewLayout(w, h int) Layout {
	x := core.Max(0, (w-boardWidth)/2)
	y := hudHeight + core.Max(0, (h-minScreenH)/2)
	return Layout{
		Frame:    core.NewRect(x, y, boardWidth, boardHeight),
		TooSmall: w < minScreenW || h < minScreenH,
	}
}

// Inner is the playfield inside the frame.
func (l Layout) Inner() core.Rect {
	return l.Frame.Inset(1)
}

// CellRect returns the screen area of a board cell.
func (l Layout) CellRect(c engine.Coord) core.Rect {
	in := l.Inner()
	return core.NewRect(in.X+c.X*cellWidth, in.Y+c.Y*cellHeight, cellWidth, cellHeight)
}

// CellAt maps a screen position to the board cell under it.
func (l Layout) CellAt(x, y int) (engine.Coord, bool) {
	in := l.Inner()
	if !in.Contains(x, y) {
		return engine.Coord{}, false
	}
	return engine.C((x-in.X)/cellWidth, (y-in.Y)/cellHeight), true
}

// Project returns the screen position of the glyph for a token at board
// position v. Fractional positions land on intermediate rows and columns.
func (l Layout) Project(v engine.Vec2) (int, int) {
	in := l.Inner()
	x := in.X + int(math.Round(v.X*cellWidth)) + 1
	y := in.Y + int(math.Round(v.Y*cellHeight))
	return x, y
}
