package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSlideCompactsAndRefills(t *testing.T) {
	b := newTestBoard(t, patternKinds())

	var column [Size]TokenID
	for y := 0; y < Size; y++ {
		column[y] = mustToken(t, b, C(0, y)).ID
	}

	b.remove(C(0, 5), mustToken(t, b, C(0, 5)), 0)
	b.remove(C(0, 7), mustToken(t, b, C(0, 7)), 0)
	settleAll(b)

	b.phase = PhaseElementSlide
	step(t, b)

	survivors := []TokenID{column[0], column[1], column[2], column[3], column[4], column[6]}
	for i, id := range survivors {
		y := i + 2
		if got := mustToken(t, b, C(0, y)); got.ID != id {
			t.Errorf("(0,%d) holds token %d, expected %d", y, got.ID, id)
		}
	}
	for y := 0; y < 2; y++ {
		got := mustToken(t, b, C(0, y))
		for _, old := range column {
			if got.ID == old {
				t.Errorf("(0,%d) should hold a new token, got old %d", y, got.ID)
			}
		}
	}

	g := b.Grid()
	if g.Count() != Size*Size {
		t.Errorf("Count() = %d, expected %d", g.Count(), Size*Size)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if b.Phase() != PhaseComboDeletion {
		t.Errorf("Phase() = %v, expected ComboDeletion", b.Phase())
	}
}

func TestSlideSpawnsAboveBoard(t *testing.T) {
	b := newTestBoard(t, patternKinds())
	for y := 0; y < 3; y++ {
		b.remove(C(6, y), mustToken(t, b, C(6, y)), 0)
	}
	settleAll(b)

	b.slide()

	starts := map[TokenID]Vec2{}
	for _, m := range b.TakeEffectMessages() {
		if m.Effect.Kind == EffectMove {
			starts[TokenID(m.Effect.Target.ID)] = m.Effect.From
		}
	}
	if len(starts) != 3 {
		t.Fatalf("got %d move effects, expected 3 spawns only", len(starts))
	}
	for y := 0; y < 3; y++ {
		tok := mustToken(t, b, C(6, y))
		want := Vec2{X: 6, Y: float64(y - 3)}
		if starts[tok.ID] != want {
			t.Errorf("spawn for (6,%d) starts at %v, expected %v", y, starts[tok.ID], want)
		}
	}
}

func TestSessionReset(t *testing.T) {
	s, err := NewSession(DefaultSettings(), rand.New(rand.NewSource(3)), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.Board().Phase() != PhaseMainMenu {
		t.Errorf("Phase() = %v, expected MainMenu", s.Board().Phase())
	}
	if err := s.Reset(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Reset() before game over error = %v, expected ErrInvalidTransition", err)
	}

	_ = s.Start()
	_ = s.Tick(100)
	if s.Board().Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected GameOver", s.Board().Phase())
	}

	old := s.Board()
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if s.Board() == old {
		t.Error("Reset() should replace the board")
	}
	if s.Board().Phase() != PhaseNormal || s.Board().Score() != 0 {
		t.Errorf("after Reset phase = %v score = %d", s.Board().Phase(), s.Board().Score())
	}
	if s.Board().TimeRemaining() != 60 {
		t.Errorf("TimeRemaining() = %v, expected 60", s.Board().TimeRemaining())
	}
	if s.Games() != 2 {
		t.Errorf("Games() = %d, expected 2", s.Games())
	}
}
