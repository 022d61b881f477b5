package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// maxStabilizeRounds bounds the initial de-combo pass.
const maxStabilizeRounds = 512

// Stats are per-session counters reported when a game ends.
type Stats struct {
	Moves          int // accepted swaps
	RevertedSwaps  int // swaps undone because they formed no combo
	LongestCascade int // most combo-deletion passes in one move
	BombsCreated   int
	LinesCreated   int
	BombsTriggered int
	LinesTriggered int
}

type swapMemory struct {
	From     Coord // previously selected cell
	To       Coord // clicked cell; the selected token lands here
	resolved bool  // first resolution pass done
}

// Board is the match-3 game board. It is not safe for concurrent use; the
// presentation layer owns it and drives it from one goroutine.
type Board struct {
	settings Settings
	rng      *rand.Rand
	log      *log.Logger

	grid          Grid
	phase         Phase
	score         int
	timeRemaining float64

	selected *Coord
	pulse    EffectID
	swap     *swapMemory
	cascade  int

	queue      []Coord
	destroyers []Destroyer

	blocking map[EffectID]struct{}
	outbox   []EffectMessage

	tokenSeq     uint64
	effectSeq    uint64
	destroyerSeq uint64

	stats Stats
}

// New builds a board in PhaseMainMenu with a random, combo-free grid.
// A nil logger discards board logs.
func New(settings Settings, rng *rand.Rand, logger *log.Logger) (*Board, error) {
	if rng == nil {
		return nil, fmt.Errorf("engine: nil random source")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Board{
		settings:      settings,
		rng:           rng,
		log:           logger,
		phase:         PhaseMainMenu,
		timeRemaining: settings.TimeLimit,
		blocking:      make(map[EffectID]struct{}),
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.grid.put(C(x, y), b.newToken())
		}
	}
	if err := b.stabilize(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromKinds builds a board in PhaseNormal whose grid holds plain tokens
// of the given kinds, indexed [y][x]. The layout is used as is, combos
// included. Refills still draw from rng.
func NewFromKinds(settings Settings, rng *rand.Rand, logger *log.Logger, kinds [Size][Size]Kind) (*Board, error) {
	b, err := New(settings, rng, logger)
	if err != nil {
		return nil, err
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.tokenSeq++
			b.grid.put(C(x, y), Token{ID: TokenID(b.tokenSeq), Kind: kinds[y][x]})
		}
	}
	b.phase = PhaseNormal
	return b, nil
}

func (b *Board) newToken() Token {
	b.tokenSeq++
	return Token{
		ID:   TokenID(b.tokenSeq),
		Kind: Kind(b.rng.Intn(b.settings.kinds())),
	}
}

func (b *Board) nextKind(k Kind) Kind {
	return Kind((int(k) + 1) % b.settings.kinds())
}

// stabilize rotates the middle token of every combo to the next kind until
// the grid has no combos.
func (b *Board) stabilize() error {
	for round := 0; round < maxStabilizeRounds; round++ {
		combos := AllCombos(&b.grid)
		if len(combos) == 0 {
			return nil
		}
		for _, c := range combos {
			m := c.Middle()
			tok, _ := b.grid.at(m)
			tok.Kind = b.nextKind(tok.Kind)
			b.grid.put(m, tok)
		}
	}
	return fmt.Errorf("%w: board still has combos after %d rounds", ErrInvariantViolation, maxStabilizeRounds)
}

// Start leaves the main menu.
func (b *Board) Start() error {
	if b.phase != PhaseMainMenu {
		return fmt.Errorf("%w: start in %v", ErrInvalidTransition, b.phase)
	}
	b.setPhase(PhaseNormal)
	return nil
}

// Click handles a cell click. It is only accepted in PhaseNormal.
//
// With nothing selected the cell becomes selected. Clicking the selected
// cell deselects it. Clicking a neighbour swaps the two tokens and starts
// resolving. Any other cell becomes the new selection.
func (b *Board) Click(at Coord) error {
	if err := checkBounds(at); err != nil {
		return err
	}
	if b.phase != PhaseNormal {
		return fmt.Errorf("%w: click in %v", ErrInvalidTransition, b.phase)
	}

	if b.selected == nil {
		b.selectCell(at)
		return nil
	}

	sel := *b.selected
	switch {
	case sel == at:
		b.clearSelection()
	case sel.Adjacent(at):
		b.clearSelection()
		if err := b.swapCells(sel, at); err != nil {
			return err
		}
		b.swap = &swapMemory{From: sel, To: at}
		b.stats.Moves++
		b.setPhase(PhaseElementSwap)
	default:
		b.clearSelection()
		b.selectCell(at)
	}
	return nil
}

func (b *Board) selectCell(at Coord) {
	b.selected = &at
	tok, ok := b.grid.at(at)
	if !ok {
		return
	}
	b.pulse = b.requestEffect(Effect{
		Kind:   EffectPulse,
		Target: TokenTarget(tok.ID),
		Period: b.settings.PulsePeriod,
	})
}

func (b *Board) clearSelection() {
	if b.pulse != 0 {
		b.cancelEffect(b.pulse)
		b.pulse = 0
	}
	b.selected = nil
}

// swapCells exchanges two tokens and animates both moves.
func (b *Board) swapCells(from, to Coord) error {
	ta, okA := b.grid.at(from)
	tb, okB := b.grid.at(to)
	if err := b.grid.Swap(from, to); err != nil {
		return err
	}
	if okA {
		b.moveToken(ta, from.Vec(), to.Vec(), b.settings.SwapDuration)
	}
	if okB {
		b.moveToken(tb, to.Vec(), from.Vec(), b.settings.SwapDuration)
	}
	return nil
}

func (b *Board) hasVanishing() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if t, ok := b.grid.at(C(x, y)); ok && t.Vanishing {
				return true
			}
		}
	}
	return false
}

// Phase returns the current phase.
func (b *Board) Phase() Phase {
	return b.phase
}

// Score returns the number of tokens deleted so far.
func (b *Board) Score() int {
	return b.score
}

// TimeRemaining returns the countdown in seconds. It goes negative once
// the game is over.
func (b *Board) TimeRemaining() float64 {
	return b.timeRemaining
}

// Selected returns the selected cell, if any.
func (b *Board) Selected() (Coord, bool) {
	if b.selected == nil {
		return Coord{}, false
	}
	return *b.selected, true
}

// Token returns the token at c, vanishing or not.
func (b *Board) Token(c Coord) (Token, bool, error) {
	return b.grid.Get(c)
}

// Grid returns a copy of the grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Destroyers returns the destroyers in flight.
func (b *Board) Destroyers() []Destroyer {
	out := make([]Destroyer, len(b.destroyers))
	copy(out, b.destroyers)
	return out
}

// Stats returns the session counters.
func (b *Board) Stats() Stats {
	return b.stats
}

// CellView is one cell of a Snapshot.
type CellView struct {
	Occupied bool
	Token    Token
}

// Snapshot returns the grid indexed [y][x].
func (b *Board) Snapshot() [Size][Size]CellView {
	var view [Size][Size]CellView
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			t, ok := b.grid.at(C(x, y))
			view[y][x] = CellView{Occupied: ok, Token: t}
		}
	}
	return view
}
