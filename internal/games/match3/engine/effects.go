package engine

// EffectID identifies a requested effect. IDs are unique per board.
type EffectID uint64

// EffectKind selects which fields of an Effect are meaningful.
type EffectKind int

const (
	// EffectMove translates the target from From to To.
	EffectMove EffectKind = iota
	// EffectScale scales the target from Begin to End.
	EffectScale
	// EffectPulse oscillates the target's scale with Period. It runs
	// until cancelled and never blocks.
	EffectPulse
)

func (k EffectKind) String() string {
	switch k {
	case EffectMove:
		return "Move"
	case EffectScale:
		return "Scale"
	case EffectPulse:
		return "Pulse"
	default:
		return "Unknown"
	}
}

// TargetKind says what an effect animates.
type TargetKind int

const (
	TargetToken TargetKind = iota
	TargetDestroyer
)

// Target names the object an effect applies to.
type Target struct {
	Kind TargetKind
	ID   uint64
}

// TokenTarget returns the target for a token.
func TokenTarget(id TokenID) Target {
	return Target{Kind: TargetToken, ID: uint64(id)}
}

// DestroyerTarget returns the target for a destroyer.
func DestroyerTarget(id DestroyerID) Target {
	return Target{Kind: TargetDestroyer, ID: uint64(id)}
}

// Effect is a presentation request. The board only tracks identity and
// whether it blocks; timing is up to the presentation layer.
type Effect struct {
	ID       EffectID
	Kind     EffectKind
	Target   Target
	Blocking bool

	From  Vec2
	To    Vec2
	Begin float64
	End   float64

	// Duration is in seconds, measured after Delay. Zero for pulses.
	Duration float64
	Delay    float64
	Period   float64
}

// EffectOp distinguishes starts from cancellations in the outbox.
type EffectOp int

const (
	EffectStart EffectOp = iota
	EffectCancel
)

// EffectMessage is an entry of the board's effect outbox.
type EffectMessage struct {
	Op     EffectOp
	Effect Effect
}

func (b *Board) requestEffect(e Effect) EffectID {
	b.effectSeq++
	e.ID = EffectID(b.effectSeq)
	if e.Blocking {
		b.blocking[e.ID] = struct{}{}
	}
	b.outbox = append(b.outbox, EffectMessage{Op: EffectStart, Effect: e})
	return e.ID
}

func (b *Board) cancelEffect(id EffectID) {
	delete(b.blocking, id)
	b.outbox = append(b.outbox, EffectMessage{Op: EffectCancel, Effect: Effect{ID: id}})
}

// TakeEffectMessages drains the outbox in request order.
func (b *Board) TakeEffectMessages() []EffectMessage {
	msgs := b.outbox
	b.outbox = nil
	return msgs
}

// SettleEffect reports that the presentation finished an effect. Settling
// a destroyer's travel effect removes the destroyer. Unknown or already
// settled IDs are ignored.
func (b *Board) SettleEffect(id EffectID) {
	delete(b.blocking, id)
	for i, d := range b.destroyers {
		if d.travel == id {
			b.destroyers = append(b.destroyers[:i], b.destroyers[i+1:]...)
			break
		}
	}
}

// PendingBlockingEffects returns the number of blocking effects not yet
// settled. While it is non-zero the phase machine does not advance.
func (b *Board) PendingBlockingEffects() int {
	return len(b.blocking)
}

func (b *Board) moveToken(t Token, from, to Vec2, duration float64) {
	b.requestEffect(Effect{
		Kind:     EffectMove,
		Target:   TokenTarget(t.ID),
		Blocking: true,
		From:     from,
		To:       to,
		Duration: duration,
	})
}

func (b *Board) scaleToken(t Token, begin, end, duration, delay float64) {
	b.requestEffect(Effect{
		Kind:     EffectScale,
		Target:   TokenTarget(t.ID),
		Blocking: true,
		Begin:    begin,
		End:      end,
		Duration: duration,
		Delay:    delay,
	})
}
