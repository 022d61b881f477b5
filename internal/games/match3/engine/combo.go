package engine

// Direction is the axis a combo runs along.
type Direction int

const (
	DirHorizontal Direction = iota
	DirVertical
)

func (d Direction) String() string {
	if d == DirVertical {
		return "Vertical"
	}
	return "Horizontal"
}

// MinComboLen is the shortest run that counts as a combo.
const MinComboLen = 3

// Combo is a maximal straight run of MinComboLen or more live tokens of
// one kind. Cells are in increasing X (horizontal) or Y (vertical) order.
type Combo struct {
	Direction Direction
	Kind      Kind
	Cells     []Coord
}

// Len returns the number of cells in the run.
func (c Combo) Len() int {
	return len(c.Cells)
}

// Contains reports whether p is part of the run.
func (c Combo) Contains(p Coord) bool {
	for _, cell := range c.Cells {
		if cell == p {
			return true
		}
	}
	return false
}

// Middle returns the cell at index Len/2.
func (c Combo) Middle() Coord {
	return c.Cells[len(c.Cells)/2]
}

// Axis returns the orientation a line bonus created from this run fires
// along.
func (c Combo) Axis() Orientation {
	if c.Direction == DirVertical {
		return Vertical
	}
	return Horizontal
}

// Intersection returns the cell shared by a horizontal and a vertical run.
func Intersection(a, b Combo) (Coord, bool) {
	if a.Direction == b.Direction {
		return Coord{}, false
	}
	h, v := a, b
	if h.Direction == DirVertical {
		h, v = v, h
	}
	p := C(v.Cells[0].X, h.Cells[0].Y)
	if h.Contains(p) && v.Contains(p) {
		return p, true
	}
	return Coord{}, false
}

// FindRuns scans every row (DirHorizontal) or column (DirVertical) and
// returns its maximal runs. Empty cells and vanishing tokens break runs.
// Rows are scanned top to bottom, columns left to right.
func FindRuns(g *Grid, dir Direction) []Combo {
	var combos []Combo

	for line := 0; line < Size; line++ {
		var run []Coord
		var kind Kind

		flush := func() {
			if len(run) >= MinComboLen {
				cells := make([]Coord, len(run))
				copy(cells, run)
				combos = append(combos, Combo{Direction: dir, Kind: kind, Cells: cells})
			}
			run = run[:0]
		}

		for i := 0; i < Size; i++ {
			c := C(i, line)
			if dir == DirVertical {
				c = C(line, i)
			}

			tok, ok := g.live(c)
			if !ok {
				flush()
				continue
			}
			if len(run) > 0 && tok.Kind == kind {
				run = append(run, c)
				continue
			}
			flush()
			run = append(run, c)
			kind = tok.Kind
		}
		flush()
	}

	return combos
}

// AllCombos returns the horizontal runs followed by the vertical runs.
func AllCombos(g *Grid) []Combo {
	return append(FindRuns(g, DirHorizontal), FindRuns(g, DirVertical)...)
}
