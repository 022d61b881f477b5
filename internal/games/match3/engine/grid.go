package engine

import "fmt"

// Grid is the 8x8 cell store, row-major. Each cell holds at most one token.
// The zero value is an empty grid; Grid is a value type, so copying it
// copies the board.
type Grid struct {
	cells [Size * Size]Token
	used  [Size * Size]bool
}

func index(c Coord) int {
	return c.Y*Size + c.X
}

func checkBounds(c Coord) error {
	if !c.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return nil
}

// Get returns the token at c. The boolean is false for an empty cell.
func (g *Grid) Get(c Coord) (Token, bool, error) {
	if err := checkBounds(c); err != nil {
		return Token{}, false, err
	}
	i := index(c)
	return g.cells[i], g.used[i], nil
}

// Set places t at c, replacing whatever was there.
func (g *Grid) Set(c Coord, t Token) error {
	if err := checkBounds(c); err != nil {
		return err
	}
	i := index(c)
	g.cells[i] = t
	g.used[i] = true
	return nil
}

// Clear empties the cell at c.
func (g *Grid) Clear(c Coord) error {
	if err := checkBounds(c); err != nil {
		return err
	}
	i := index(c)
	g.cells[i] = Token{}
	g.used[i] = false
	return nil
}

// Swap exchanges the contents of two cells. Empty cells swap too.
func (g *Grid) Swap(a, b Coord) error {
	if err := checkBounds(a); err != nil {
		return err
	}
	if err := checkBounds(b); err != nil {
		return err
	}
	ia, ib := index(a), index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	g.used[ia], g.used[ib] = g.used[ib], g.used[ia]
	return nil
}

// Occupied reports whether c holds a live token. Vanishing tokens and
// off-board coordinates report false.
func (g *Grid) Occupied(c Coord) bool {
	if !c.InBounds() {
		return false
	}
	i := index(c)
	return g.used[i] && !g.cells[i].Vanishing
}

// Count returns the number of occupied cells, vanishing tokens included.
func (g *Grid) Count() int {
	n := 0
	for _, u := range g.used {
		if u {
			n++
		}
	}
	return n
}

// Validate checks that no token appears in two cells.
func (g *Grid) Validate() error {
	seen := make(map[TokenID]Coord, Size*Size)
	for i, u := range g.used {
		if !u {
			continue
		}
		at := Coord{X: i % Size, Y: i / Size}
		id := g.cells[i].ID
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("%w: token %d at both %v and %v", ErrInvariantViolation, id, prev, at)
		}
		seen[id] = at
	}
	return nil
}

// at is the unchecked accessor for in-package callers that have already
// validated c.
func (g *Grid) at(c Coord) (Token, bool) {
	i := index(c)
	return g.cells[i], g.used[i]
}

// live returns the token at c if it is present and not vanishing.
func (g *Grid) live(c Coord) (Token, bool) {
	if !c.InBounds() {
		return Token{}, false
	}
	t, ok := g.at(c)
	if !ok || t.Vanishing {
		return Token{}, false
	}
	return t, true
}

func (g *Grid) put(c Coord, t Token) {
	i := index(c)
	g.cells[i] = t
	g.used[i] = true
}

func (g *Grid) empty(c Coord) {
	i := index(c)
	g.cells[i] = Token{}
	g.used[i] = false
}
