package engine

// Kind is the shape of a token. Tokens match when their kinds are equal,
// regardless of any bonus they carry.
type Kind int

const (
	Square Kind = iota
	Circle
	Triangle
	Hexagon
	Diamond
)

// KindCount is the number of distinct token kinds.
const KindCount = 5

func (k Kind) String() string {
	switch k {
	case Square:
		return "Square"
	case Circle:
		return "Circle"
	case Triangle:
		return "Triangle"
	case Hexagon:
		return "Hexagon"
	case Diamond:
		return "Diamond"
	default:
		return "Unknown"
	}
}

// Bonus selects the token variant.
type Bonus int

const (
	BonusNone Bonus = iota
	BonusLine
	BonusBomb
)

func (b Bonus) String() string {
	switch b {
	case BonusNone:
		return "None"
	case BonusLine:
		return "Line"
	case BonusBomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// Orientation is the firing axis of a line bonus.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// TokenID identifies a token for the lifetime of a board.
type TokenID uint64

// Token is a grid resident.
//
// A plain token has Bonus == BonusNone. A line bonus fires destroyers along
// Orientation; a bomb clears its 3x3 neighbourhood. Orientation is ignored
// for the other variants.
type Token struct {
	ID          TokenID
	Kind        Kind
	Bonus       Bonus
	Orientation Orientation

	// Vanishing is set once the token has been deleted and scored. The cell
	// stays occupied until the next slide commits the removal.
	Vanishing bool
}

// IsBonus reports whether the token carries a bonus.
func (t Token) IsBonus() bool {
	return t.Bonus != BonusNone
}

// Live reports whether the token is present and not yet deleted.
func (t Token) Live() bool {
	return !t.Vanishing
}
