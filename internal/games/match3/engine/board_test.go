package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewBoardIsStableAndFull(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b, err := New(DefaultSettings(), rand.New(rand.NewSource(seed)), nil)
		if err != nil {
			t.Fatalf("seed %d: New() error = %v", seed, err)
		}
		if b.Phase() != PhaseMainMenu {
			t.Errorf("seed %d: Phase() = %v, expected MainMenu", seed, b.Phase())
		}
		g := b.Grid()
		if g.Count() != Size*Size {
			t.Errorf("seed %d: Count() = %d, expected %d", seed, g.Count(), Size*Size)
		}
		if combos := AllCombos(&g); len(combos) != 0 {
			t.Errorf("seed %d: new board has combos %v", seed, combos)
		}
		if err := g.Validate(); err != nil {
			t.Errorf("seed %d: Validate() error = %v", seed, err)
		}
	}
}

func TestNewBoardRespectsKindLimit(t *testing.T) {
	s := DefaultSettings()
	s.Kinds = 3
	b, err := New(s, rand.New(rand.NewSource(7)), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, row := range b.Snapshot() {
		for _, cell := range row {
			if cell.Token.Kind >= 3 {
				t.Fatalf("token kind %v outside 3-kind set", cell.Token.Kind)
			}
		}
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	a, _ := New(DefaultSettings(), rand.New(rand.NewSource(42)), nil)
	b, _ := New(DefaultSettings(), rand.New(rand.NewSource(42)), nil)

	if a.Snapshot() != b.Snapshot() {
		t.Error("same seed should produce identical boards")
	}
}

func TestStartOnlyFromMainMenu(t *testing.T) {
	b, _ := New(DefaultSettings(), rand.New(rand.NewSource(1)), nil)

	if err := b.Click(C(0, 0)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Click() in MainMenu error = %v, expected ErrInvalidTransition", err)
	}
	if err := b.Tick(5); err != nil || b.TimeRemaining() != 60 {
		t.Errorf("Tick() in MainMenu changed time to %v (err %v)", b.TimeRemaining(), err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if b.Phase() != PhaseNormal {
		t.Errorf("Phase() = %v, expected Normal", b.Phase())
	}
	if err := b.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Start() error = %v, expected ErrInvalidTransition", err)
	}
}

func TestClickSelection(t *testing.T) {
	b := newTestBoard(t, patternKinds())

	if err := b.Click(C(8, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Click() off board error = %v, expected ErrOutOfBounds", err)
	}

	_ = b.Click(C(3, 3))
	if sel, ok := b.Selected(); !ok || sel != C(3, 3) {
		t.Fatalf("Selected() = %v, %v; expected (3,3)", sel, ok)
	}
	msgs := b.TakeEffectMessages()
	if len(msgs) != 1 || msgs[0].Effect.Kind != EffectPulse || msgs[0].Effect.Blocking {
		t.Fatalf("expected one non-blocking pulse, got %+v", msgs)
	}
	pulse := msgs[0].Effect.ID
	if b.PendingBlockingEffects() != 0 {
		t.Error("pulse must not block")
	}

	// Non-adjacent click moves the selection.
	_ = b.Click(C(6, 6))
	if sel, ok := b.Selected(); !ok || sel != C(6, 6) {
		t.Errorf("Selected() = %v, %v; expected (6,6)", sel, ok)
	}
	msgs = b.TakeEffectMessages()
	if len(msgs) != 2 || msgs[0].Op != EffectCancel || msgs[0].Effect.ID != pulse {
		t.Errorf("expected cancel of pulse %d then a new pulse, got %+v", pulse, msgs)
	}

	// Clicking the selected cell deselects.
	_ = b.Click(C(6, 6))
	if _, ok := b.Selected(); ok {
		t.Error("clicking the selected cell should clear the selection")
	}
	if b.Phase() != PhaseNormal {
		t.Errorf("Phase() = %v, expected Normal", b.Phase())
	}
}

func TestScenarioSimpleRun(t *testing.T) {
	kinds := patternKinds()
	kinds[0][0], kinds[0][1], kinds[0][2] = Square, Square, Square
	b := newTestBoard(t, kinds)

	g := b.Grid()
	combos := AllCombos(&g)
	if len(combos) != 1 || combos[0].Len() != 3 {
		t.Fatalf("AllCombos() = %v, expected one run of 3", combos)
	}

	b.phase = PhaseComboDeletion
	step(t, b)

	if b.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", b.Score())
	}
	if b.Phase() != PhaseElementSlide {
		t.Errorf("Phase() = %v, expected ElementSlide", b.Phase())
	}
	for x := 0; x < 3; x++ {
		if tok := mustToken(t, b, C(x, 0)); !tok.Vanishing {
			t.Errorf("(%d,0) should be vanishing", x)
		}
	}

	step(t, b)
	g = b.Grid()
	if g.Count() != Size*Size || countVanishing(b) != 0 {
		t.Errorf("after slide Count() = %d, vanishing = %d", g.Count(), countVanishing(b))
	}
}

// fiveRunKinds sets up row 3 as D D H D D with a D at (2,4). Swapping
// (2,4) into (2,3) makes a five-long run of Diamonds.
func fiveRunKinds() [Size][Size]Kind {
	k := patternKinds()
	k[3][0], k[3][1] = Diamond, Diamond
	k[3][3], k[3][4] = Diamond, Diamond
	k[3][2] = Hexagon
	k[4][2] = Diamond
	return k
}

func TestScenarioFiveRunMakesBomb(t *testing.T) {
	b := newTestBoard(t, fiveRunKinds())

	_ = b.Click(C(2, 4))
	_ = b.Click(C(2, 3))
	if b.Phase() != PhaseElementSwap {
		t.Fatalf("Phase() = %v, expected ElementSwap", b.Phase())
	}

	step(t, b) // ElementSwap -> ComboDeletion
	step(t, b) // resolve

	bomb := mustToken(t, b, C(2, 3))
	if bomb.Bonus != BonusBomb || bomb.Vanishing {
		t.Fatalf("(2,3) = %+v, expected a live bomb", bomb)
	}
	if bomb.Kind != Diamond {
		t.Errorf("bomb kind = %v, expected Diamond", bomb.Kind)
	}
	if b.Score() != 4 {
		t.Errorf("Score() = %d, expected 4 (promoted cell is not scored)", b.Score())
	}
	if b.Phase() != PhaseElementSlide {
		t.Errorf("Phase() = %v, expected ElementSlide", b.Phase())
	}

	// Detonating it removes the bomb and its six still-live neighbours;
	// (1,3) and (3,3) were already deleted and are not scored twice.
	trigger(t, b, C(2, 3))
	if b.Score() != 4+7 {
		t.Errorf("Score() = %d, expected 11", b.Score())
	}
	if b.Score() != countVanishing(b) {
		t.Errorf("Score() = %d but %d tokens vanishing", b.Score(), countVanishing(b))
	}
	if b.Stats().BombsCreated != 1 || b.Stats().BombsTriggered != 1 {
		t.Errorf("Stats() = %+v", b.Stats())
	}
}

func TestScenarioIntersectionMakesBomb(t *testing.T) {
	kinds := patternKinds()
	kinds[0][0], kinds[0][1], kinds[0][2] = Square, Square, Square
	kinds[1][0], kinds[2][0] = Square, Square
	b := newTestBoard(t, kinds)

	b.phase = PhaseComboDeletion
	step(t, b)

	tok := mustToken(t, b, C(0, 0))
	if tok.Bonus != BonusBomb || tok.Vanishing {
		t.Errorf("shared cell = %+v, expected a live bomb", tok)
	}
	if b.Score() != 4 {
		t.Errorf("Score() = %d, expected 4", b.Score())
	}
}

func TestScenarioSwapBack(t *testing.T) {
	b := newTestBoard(t, patternKinds())
	left := mustToken(t, b, C(0, 0))
	right := mustToken(t, b, C(1, 0))

	_ = b.Click(C(0, 0))
	_ = b.Click(C(1, 0))
	if b.PendingBlockingEffects() != 2 {
		t.Fatalf("PendingBlockingEffects() = %d, expected 2", b.PendingBlockingEffects())
	}

	// Gate holds while the swap is animating.
	_ = b.Tick(0.01)
	if b.Phase() != PhaseElementSwap {
		t.Fatalf("Phase() = %v, expected ElementSwap while gated", b.Phase())
	}

	step(t, b)
	if b.Phase() != PhaseSwapBack {
		t.Fatalf("Phase() = %v, expected SwapBack", b.Phase())
	}

	runToNormal(t, b)
	if got := mustToken(t, b, C(0, 0)); got.ID != left.ID {
		t.Errorf("(0,0) holds token %d, expected %d", got.ID, left.ID)
	}
	if got := mustToken(t, b, C(1, 0)); got.ID != right.ID {
		t.Errorf("(1,0) holds token %d, expected %d", got.ID, right.ID)
	}
	if b.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", b.Score())
	}
	if s := b.Stats(); s.Moves != 1 || s.RevertedSwaps != 1 {
		t.Errorf("Stats() = %+v, expected 1 move, 1 revert", s)
	}
}

func TestScenarioTimeout(t *testing.T) {
	b := newTestBoard(t, patternKinds())
	_ = b.Click(C(0, 0))
	_ = b.Click(C(1, 0))

	// Blocking effects pending and a transition due; the clock wins.
	if err := b.Tick(61); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if b.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected GameOver", b.Phase())
	}

	score, remaining := b.Score(), b.TimeRemaining()
	settleAll(b)
	_ = b.Tick(1)
	if b.Score() != score || b.TimeRemaining() != remaining {
		t.Error("score or time changed after game over")
	}
	if err := b.Click(C(2, 2)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Click() after game over error = %v, expected ErrInvalidTransition", err)
	}
}

func TestTimerCountsDownDuringResolution(t *testing.T) {
	b := newTestBoard(t, patternKinds())
	_ = b.Tick(0.5)
	_ = b.Click(C(0, 0))
	_ = b.Click(C(1, 0))
	_ = b.Tick(0.5)

	if got := b.TimeRemaining(); got != 59 {
		t.Errorf("TimeRemaining() = %v, expected 59", got)
	}
}

func TestFourRunMakesLineBonus(t *testing.T) {
	k := patternKinds()
	k[3][0], k[3][1] = Diamond, Diamond
	k[4][2] = Diamond
	b := newTestBoard(t, k)

	_ = b.Click(C(2, 4))
	_ = b.Click(C(2, 3))
	step(t, b)
	step(t, b)

	tok := mustToken(t, b, C(2, 3))
	if tok.Bonus != BonusLine || tok.Orientation != Horizontal {
		t.Errorf("(2,3) = %+v, expected horizontal line bonus", tok)
	}
	if b.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", b.Score())
	}
}

func TestBombBeatsLineAtPrimary(t *testing.T) {
	k := patternKinds()
	k[0][1], k[0][2], k[0][3] = Square, Square, Square
	k[1][0], k[2][0] = Square, Square
	g := gridFromKinds(k)

	primary := C(0, 0)
	plan := planResolution(g, AllCombos(g), &primary)

	if len(plan.Promotions) != 1 {
		t.Fatalf("Promotions = %+v, expected exactly one", plan.Promotions)
	}
	if p := plan.Promotions[0]; p.At != primary || p.Bonus != BonusBomb {
		t.Errorf("promotion = %+v, expected bomb at %v", p, primary)
	}
	if len(plan.Deletions) != 5 {
		t.Errorf("len(Deletions) = %d, expected 5", len(plan.Deletions))
	}
}

func TestCascadeHasNoPrimary(t *testing.T) {
	k := patternKinds()
	for x := 0; x < 4; x++ {
		k[6][x] = Square
	}
	g := gridFromKinds(k)

	plan := planResolution(g, AllCombos(g), nil)
	if len(plan.Promotions) != 0 {
		t.Errorf("Promotions = %+v, expected none without a primary cell", plan.Promotions)
	}
	if len(plan.Deletions) != 4 {
		t.Errorf("len(Deletions) = %d, expected 4", len(plan.Deletions))
	}
}

func TestExistingBonusInComboIsTriggered(t *testing.T) {
	kinds := patternKinds()
	kinds[0][0], kinds[0][1], kinds[0][2] = Square, Square, Square
	b := newTestBoard(t, kinds)
	placeBonus(b, C(1, 0), BonusBomb, Horizontal)

	b.phase = PhaseComboDeletion
	step(t, b)
	if b.Phase() != PhaseBonus {
		t.Fatalf("Phase() = %v, expected Bonus", b.Phase())
	}
	if b.Score() != 2 {
		t.Errorf("Score() = %d, expected 2 before the bomb fires", b.Score())
	}

	step(t, b)
	// Bomb at (1,0): itself plus (0,1), (1,1), (2,1); (0,0) and (2,0) are
	// already gone.
	if b.Score() != 6 {
		t.Errorf("Score() = %d, expected 6", b.Score())
	}
	if b.Phase() != PhaseComboDeletion {
		t.Errorf("Phase() = %v, expected ComboDeletion", b.Phase())
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := DefaultSettings()
		s.TimeLimit = 1e9
		b, err := New(s, rand.New(rand.NewSource(seed)), nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		_ = b.Start()

		last := 0
		for move := 0; move < 40; move++ {
			at := C(rng.Intn(Size), rng.Intn(Size))
			dirs := []Coord{C(1, 0), C(-1, 0), C(0, 1), C(0, -1)}
			d := dirs[rng.Intn(len(dirs))]
			to := at.Add(d.X, d.Y)
			if !to.InBounds() {
				continue
			}
			if err := b.Click(at); err != nil {
				t.Fatalf("seed %d: Click() error = %v", seed, err)
			}
			if err := b.Click(to); err != nil {
				t.Fatalf("seed %d: Click() error = %v", seed, err)
			}
			for i := 0; i < 1000 && b.Phase() != PhaseNormal; i++ {
				step(t, b)
				if b.Score() < last {
					t.Fatalf("seed %d: score decreased from %d to %d", seed, last, b.Score())
				}
				last = b.Score()
			}
			if b.Phase() != PhaseNormal {
				t.Fatalf("seed %d: stuck in %v", seed, b.Phase())
			}

			g := b.Grid()
			if g.Count() != Size*Size || countVanishing(b) != 0 {
				t.Fatalf("seed %d: board not full at rest", seed)
			}
			if combos := AllCombos(&g); len(combos) != 0 {
				t.Fatalf("seed %d: combos left at rest: %v", seed, combos)
			}
			settleAll(b)
			if len(b.Destroyers()) != 0 {
				t.Fatalf("seed %d: destroyers left at rest", seed)
			}
		}
	}
}
