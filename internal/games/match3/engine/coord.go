// Package engine implements the match-3 board: the grid of tokens, combo
// detection, bonus resolution, gravity and the phase machine that drives
// them. It has no terminal or rendering dependencies; presentation code
// talks to it through Click, Tick and the effect outbox.
package engine

import (
	"fmt"
	"math"
)

// Size is the board edge length in cells.
const Size = 8

// Coord is an integer cell position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Manhattan returns the taxicab distance between two cells.
func (c Coord) Manhattan(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent reports whether o shares an edge with c.
func (c Coord) Adjacent(o Coord) bool {
	return c.Manhattan(o) == 1
}

// Vec returns the cell position as a real-valued point.
func (c Coord) Vec() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Vec2 is a real-valued board position, measured in cells. Effects use it
// for positions that may lie between or outside cells.
type Vec2 struct {
	X float64
	Y float64
}

// Lerp interpolates between v and to; t=0 yields v, t=1 yields to.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
	}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Round returns the nearest cell to v. The result may be off the board.
func (v Vec2) Round() Coord {
	return Coord{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
