package engine

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// maxTriggers bounds one bonus-phase drain.
const maxTriggers = 64

type promotion struct {
	At          Coord
	Bonus       Bonus
	Orientation Orientation
}

// resolutionPlan is the outcome of one combo-deletion pass: cells that turn
// into bonuses and cells that are deleted, in discovery order.
type resolutionPlan struct {
	Promotions []promotion
	Deletions  []Coord
}

// planResolution decides promotions and deletions for the given combos.
//
// Priority: a bomb at the primary cell when it sits in a run of five or
// more, then a bomb at every horizontal/vertical intersection, then a line
// bonus at the primary cell when it sits in a run of exactly four. A cell
// already holding a bonus is never promoted; it is deleted, which triggers
// it. Primary is nil for cascade passes.
func planResolution(g *Grid, combos []Combo, primary *Coord) resolutionPlan {
	var plan resolutionPlan
	promoted := mapset.New[Coord]()

	promote := func(at Coord, bonus Bonus, o Orientation) {
		if promoted.Has(at) {
			return
		}
		if tok, ok := g.live(at); !ok || tok.IsBonus() {
			return
		}
		promoted.Put(at)
		plan.Promotions = append(plan.Promotions, promotion{At: at, Bonus: bonus, Orientation: o})
	}

	if primary != nil {
		for _, c := range combos {
			if c.Len() >= 5 && c.Contains(*primary) {
				promote(*primary, BonusBomb, Horizontal)
				break
			}
		}
	}

	for _, a := range combos {
		if a.Direction != DirHorizontal {
			continue
		}
		for _, v := range combos {
			if at, ok := Intersection(a, v); ok {
				promote(at, BonusBomb, Horizontal)
			}
		}
	}

	if primary != nil {
		for _, c := range combos {
			if c.Len() == 4 && c.Contains(*primary) {
				promote(*primary, BonusLine, c.Axis())
				break
			}
		}
	}

	seen := mapset.New[Coord]()
	for _, c := range combos {
		for _, cell := range c.Cells {
			if promoted.Has(cell) || seen.Has(cell) {
				continue
			}
			seen.Put(cell)
			plan.Deletions = append(plan.Deletions, cell)
		}
	}

	return plan
}

// applyPlan promotes tokens in place and deletes the rest. Deleted bonus
// tokens are queued for triggering instead of being removed directly.
func (b *Board) applyPlan(plan resolutionPlan) {
	for _, p := range plan.Promotions {
		tok, _ := b.grid.at(p.At)
		tok.Bonus = p.Bonus
		tok.Orientation = p.Orientation
		b.grid.put(p.At, tok)

		switch p.Bonus {
		case BonusBomb:
			b.stats.BombsCreated++
		case BonusLine:
			b.stats.LinesCreated++
		}
		b.log.Debug("bonus created", "at", p.At, "bonus", p.Bonus, "orientation", p.Orientation)
		b.scaleToken(tok, 0, 1, b.settings.SpawnDuration, 0)
	}

	for _, at := range plan.Deletions {
		b.strike(at, 0)
	}
}

// strike hits the cell at c. A live bonus is queued; a live plain token is
// deleted after delay. Empty, vanishing and off-board cells are ignored.
func (b *Board) strike(c Coord, delay float64) {
	tok, ok := b.grid.live(c)
	if !ok {
		return
	}
	if tok.IsBonus() {
		b.queue = append(b.queue, c)
		return
	}
	b.remove(c, tok, delay)
}

// remove marks the token vanishing, scores it and requests its implode
// effect. The cell is emptied by the next slide.
func (b *Board) remove(c Coord, tok Token, delay float64) {
	tok.Vanishing = true
	b.grid.put(c, tok)
	b.score++
	b.scaleToken(tok, 1, 0, b.settings.ImplodeDuration, delay)
}

// drainTriggers fires queued bonuses in FIFO order. Each trigger marks its
// own cell before striking others, so a bonus fires at most once.
func (b *Board) drainTriggers() error {
	fired := 0
	for len(b.queue) > 0 {
		at := b.queue[0]
		b.queue = b.queue[1:]

		tok, ok := b.grid.live(at)
		if !ok || !tok.IsBonus() {
			continue
		}

		fired++
		if fired > maxTriggers {
			b.queue = nil
			return fmt.Errorf("%w: more than %d bonus triggers in one pass", ErrInvariantViolation, maxTriggers)
		}

		b.remove(at, tok, 0)
		switch tok.Bonus {
		case BonusLine:
			b.stats.LinesTriggered++
			b.fireLine(at, tok.Orientation)
		case BonusBomb:
			b.stats.BombsTriggered++
			b.fireBomb(at)
		}
	}
	return nil
}

// fireBomb strikes the 3x3 neighbourhood around at.
func (b *Board) fireBomb(at Coord) {
	b.log.Debug("bomb", "at", at)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			b.strike(at.Add(dx, dy), 0)
		}
	}
}

// fireLine launches two destroyers from at in opposite directions along o.
// Cells on each path are struck immediately, in travel order; the implode
// of a plain token is delayed until the destroyer arrives.
func (b *Board) fireLine(at Coord, o Orientation) {
	b.log.Debug("line", "at", at, "orientation", o)
	for _, step := range destroyerSteps(o) {
		b.destroyerSeq++
		d := Destroyer{
			ID:          DestroyerID(b.destroyerSeq),
			Origin:      at,
			Step:        step,
			Destination: edgeDestination(at, step),
			Speed:       b.settings.DestroyerSpeed,
		}
		d.travel = b.requestEffect(Effect{
			Kind:     EffectMove,
			Target:   DestroyerTarget(d.ID),
			Blocking: true,
			From:     d.Origin.Vec(),
			To:       d.Destination.Vec(),
			Duration: d.TravelTime(),
		})
		b.destroyers = append(b.destroyers, d)

		for _, c := range d.Path() {
			b.strike(c, d.ArrivalDelay(c))
		}
	}
}
