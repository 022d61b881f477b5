// Package fx plays the effects a match-3 board requests and reports them
// back as settled. It owns all timing; the board only sees IDs.
package fx

import (
	"math"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Settler receives completion notices. *engine.Board implements it.
type Settler interface {
	SettleEffect(id engine.EffectID)
}

// Running is an effect in progress.
type Running struct {
	engine.Effect
	Elapsed float64 // seconds since the effect started, delay included
}

// Started reports whether the delay has passed.
func (r Running) Started() bool {
	return r.Elapsed >= r.Delay
}

// Progress returns completion in [0, 1]. Pulses never complete.
func (r Running) Progress() float64 {
	if r.Kind == engine.EffectPulse {
		return 0
	}
	if r.Duration <= 0 {
		return 1
	}
	return core.ClampF((r.Elapsed-r.Delay)/r.Duration, 0, 1)
}

// Done reports whether a finite effect has run its course.
func (r Running) Done() bool {
	return r.Kind != engine.EffectPulse && r.Elapsed >= r.Delay+r.Duration
}

// Position returns the interpolated position of a move effect. Token moves
// ease out; destroyers travel at constant speed.
func (r Running) Position() engine.Vec2 {
	t := r.Progress()
	if r.Target.Kind == engine.TargetToken {
		t = easeOutQuad(t)
	}
	return r.From.Lerp(r.To, t)
}

// Scale returns the current scale factor of a scale or pulse effect.
// A pulse maps a sine wave with the effect's period onto [0.75, 1].
func (r Running) Scale() float64 {
	switch r.Kind {
	case engine.EffectScale:
		return r.Begin + (r.End-r.Begin)*r.Progress()
	case engine.EffectPulse:
		if r.Period <= 0 {
			return 1
		}
		wave := math.Sin(2 * math.Pi * r.Elapsed / r.Period)
		return 0.875 + 0.125*wave
	default:
		return 1
	}
}

// Animator tracks running effects in request order.
type Animator struct {
	running []Running
}

// New returns an idle animator.
func New() *Animator {
	return &Animator{}
}

// Apply starts and cancels effects from a board's outbox.
func (a *Animator) Apply(msgs []engine.EffectMessage) {
	for _, m := range msgs {
		switch m.Op {
		case engine.EffectStart:
			a.running = append(a.running, Running{Effect: m.Effect})
		case engine.EffectCancel:
			a.remove(m.Effect.ID)
		}
	}
}

func (a *Animator) remove(id engine.EffectID) {
	for i, r := range a.running {
		if r.ID == id {
			a.running = append(a.running[:i], a.running[i+1:]...)
			return
		}
	}
}

// Advance moves every effect forward by dt seconds and settles the ones
// that finished.
func (a *Animator) Advance(dt float64, s Settler) {
	kept := a.running[:0]
	var done []engine.EffectID
	for _, r := range a.running {
		r.Elapsed += dt
		if r.Done() {
			done = append(done, r.ID)
			continue
		}
		kept = append(kept, r)
	}
	a.running = kept

	for _, id := range done {
		s.SettleEffect(id)
	}
}

// Finish completes every finite effect at once. Pulses keep running.
func (a *Animator) Finish(s Settler) {
	kept := a.running[:0]
	var done []engine.EffectID
	for _, r := range a.running {
		if r.Kind == engine.EffectPulse {
			kept = append(kept, r)
			continue
		}
		done = append(done, r.ID)
	}
	a.running = kept

	for _, id := range done {
		s.SettleEffect(id)
	}
}

// Reset drops every effect without settling. Used when the board it was
// animating is discarded.
func (a *Animator) Reset() {
	a.running = nil
}

// Len returns the number of running effects.
func (a *Animator) Len() int {
	return len(a.running)
}

// Running returns a copy of the running effects.
func (a *Animator) Running() []Running {
	out := make([]Running, len(a.running))
	copy(out, a.running)
	return out
}

// Position returns where target should be drawn if a move effect is
// animating it. The most recently requested move wins.
func (a *Animator) Position(target engine.Target) (engine.Vec2, bool) {
	var pos engine.Vec2
	found := false
	for _, r := range a.running {
		if r.Target == target && r.Kind == engine.EffectMove {
			pos = r.Position()
			found = true
		}
	}
	return pos, found
}

// Scale returns the product of the scale and pulse effects on target.
// Scale effects that have not started yet hold their begin value.
func (a *Animator) Scale(target engine.Target) float64 {
	scale := 1.0
	for _, r := range a.running {
		if r.Target != target {
			continue
		}
		switch r.Kind {
		case engine.EffectScale, engine.EffectPulse:
			scale *= r.Scale()
		}
	}
	return scale
}

// Animating reports whether any effect targets target.
func (a *Animator) Animating(target engine.Target) bool {
	for _, r := range a.running {
		if r.Target == target {
			return true
		}
	}
	return false
}

func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
