package engine

import "fmt"

// Phase is the board's state machine position.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseNormal
	PhaseElementSwap
	PhaseSwapBack
	PhaseComboDeletion
	PhaseBonus
	PhaseElementSlide
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhaseNormal:
		return "Normal"
	case PhaseElementSwap:
		return "ElementSwap"
	case PhaseSwapBack:
		return "SwapBack"
	case PhaseComboDeletion:
		return "ComboDeletion"
	case PhaseBonus:
		return "Bonus"
	case PhaseElementSlide:
		return "ElementSlide"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Timed reports whether the countdown runs in this phase.
func (p Phase) Timed() bool {
	return p != PhaseMainMenu && p != PhaseGameOver
}

// Resolving reports whether the board is in the middle of a move.
func (p Phase) Resolving() bool {
	switch p {
	case PhaseElementSwap, PhaseSwapBack, PhaseComboDeletion, PhaseBonus, PhaseElementSlide:
		return true
	}
	return false
}

// Tick advances the board by dt seconds.
//
// The countdown is checked first; once it drops below zero the board is in
// GameOver regardless of pending effects. Otherwise, while any blocking
// effect is unsettled, nothing happens. With the gate open, exactly one
// phase transition runs.
func (b *Board) Tick(dt float64) error {
	if !b.phase.Timed() {
		return nil
	}

	b.timeRemaining -= dt
	if b.timeRemaining < 0 {
		b.enterGameOver()
		return nil
	}

	if b.PendingBlockingEffects() > 0 {
		return nil
	}

	if err := b.step(); err != nil {
		return err
	}
	return b.grid.Validate()
}

func (b *Board) step() error {
	switch b.phase {
	case PhaseNormal:
		// idle; waits for Click
	case PhaseElementSwap:
		if len(AllCombos(&b.grid)) == 0 {
			b.setPhase(PhaseSwapBack)
		} else {
			b.setPhase(PhaseComboDeletion)
		}
	case PhaseSwapBack:
		if b.swap == nil {
			return fmt.Errorf("%w: swap back without a recorded swap", ErrInvariantViolation)
		}
		if err := b.swapCells(b.swap.To, b.swap.From); err != nil {
			return err
		}
		b.stats.RevertedSwaps++
		b.swap = nil
		b.setPhase(PhaseComboDeletion)
	case PhaseComboDeletion:
		return b.stepComboDeletion()
	case PhaseBonus:
		if err := b.drainTriggers(); err != nil {
			return err
		}
		b.setPhase(PhaseComboDeletion)
	case PhaseElementSlide:
		b.slide()
		b.setPhase(PhaseComboDeletion)
	}
	return nil
}

func (b *Board) stepComboDeletion() error {
	combos := AllCombos(&b.grid)
	if len(combos) == 0 {
		if b.hasVanishing() {
			b.setPhase(PhaseElementSlide)
			return nil
		}
		b.swap = nil
		b.cascade = 0
		b.setPhase(PhaseNormal)
		return nil
	}

	b.cascade++
	if b.cascade > b.stats.LongestCascade {
		b.stats.LongestCascade = b.cascade
	}

	var primary *Coord
	if b.swap != nil && !b.swap.resolved {
		p := b.swap.To
		primary = &p
		b.swap.resolved = true
	}

	b.applyPlan(planResolution(&b.grid, combos, primary))

	if len(b.queue) > 0 {
		b.setPhase(PhaseBonus)
	} else {
		b.setPhase(PhaseElementSlide)
	}
	return nil
}

func (b *Board) setPhase(p Phase) {
	if p != b.phase {
		b.log.Debug("phase", "from", b.phase, "to", p, "score", b.score)
	}
	b.phase = p
}

func (b *Board) enterGameOver() {
	b.clearSelection()
	b.queue = nil
	b.setPhase(PhaseGameOver)
	b.log.Info("game over", "score", b.score, "moves", b.stats.Moves)
}
