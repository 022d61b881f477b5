package engine

import (
	"math/rand"
	"testing"
)

// patternKinds returns a layout with no two equal neighbours in any row or
// column: kind(x, y) = (x + 2y) mod 5.
//
//	y0: S C T H D S C T
//	y1: T H D S C T H D
//	y2: D S C T H D S C
//	y3: C T H D S C T H
//	y4: H D S C T H D S
//	y5: S C T H D S C T
//	y6: T H D S C T H D
//	y7: D S C T H D S C
func patternKinds() [Size][Size]Kind {
	var k [Size][Size]Kind
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			k[y][x] = Kind((x + 2*y) % KindCount)
		}
	}
	return k
}

func newTestBoard(t *testing.T, kinds [Size][Size]Kind) *Board {
	t.Helper()
	b, err := NewFromKinds(DefaultSettings(), rand.New(rand.NewSource(1)), nil, kinds)
	if err != nil {
		t.Fatalf("NewFromKinds() error = %v", err)
	}
	return b
}

// settleAll drains the outbox and settles every blocking effect.
func settleAll(b *Board) []EffectMessage {
	msgs := b.TakeEffectMessages()
	for _, m := range msgs {
		if m.Op == EffectStart && m.Effect.Blocking {
			b.SettleEffect(m.Effect.ID)
		}
	}
	return msgs
}

// step settles pending effects and runs one tick.
func step(t *testing.T, b *Board) {
	t.Helper()
	settleAll(b)
	if err := b.Tick(0.01); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
}

func runToNormal(t *testing.T, b *Board) {
	t.Helper()
	for i := 0; i < 500; i++ {
		step(t, b)
		if b.Phase() == PhaseNormal {
			settleAll(b)
			return
		}
	}
	t.Fatalf("board did not return to Normal, phase = %v", b.Phase())
}

func mustToken(t *testing.T, b *Board, c Coord) Token {
	t.Helper()
	tok, ok, err := b.Token(c)
	if err != nil || !ok {
		t.Fatalf("Token(%v) = _, %v, %v; expected a token", c, ok, err)
	}
	return tok
}

func placeBonus(b *Board, c Coord, bonus Bonus, o Orientation) {
	tok, _ := b.grid.at(c)
	tok.Bonus = bonus
	tok.Orientation = o
	b.grid.put(c, tok)
}

func countVanishing(b *Board) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if tok, ok := b.grid.at(C(x, y)); ok && tok.Vanishing {
				n++
			}
		}
	}
	return n
}

// trigger queues the bonus at c and runs the bonus phase once.
func trigger(t *testing.T, b *Board, c Coord) {
	t.Helper()
	settleAll(b)
	b.queue = append(b.queue, c)
	b.phase = PhaseBonus
	step(t, b)
}
