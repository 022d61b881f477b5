package engine

// slide commits pending removals, compacts every column toward the bottom
// and refills the top. Surviving tokens keep their relative order. New
// tokens start above the board, stacked as if they had been waiting there,
// and fall into place.
func (b *Board) slide() {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := C(x, y)
			if t, ok := b.grid.at(c); ok && t.Vanishing {
				b.grid.empty(c)
			}
		}
	}

	for x := 0; x < Size; x++ {
		settled := 0
		for y := Size - 1; y >= 0; y-- {
			from := C(x, y)
			tok, ok := b.grid.at(from)
			if !ok {
				continue
			}
			to := C(x, Size-1-settled)
			settled++
			if to == from {
				continue
			}
			b.grid.empty(from)
			b.grid.put(to, tok)
			b.moveToken(tok, from.Vec(), to.Vec(), b.settings.FallDuration)
		}

		missing := Size - settled
		for y := 0; y < missing; y++ {
			to := C(x, y)
			tok := b.newToken()
			b.grid.put(to, tok)
			start := Vec2{X: float64(x), Y: float64(y - missing)}
			b.moveToken(tok, start, to.Vec(), b.settings.FallDuration)
		}
	}
}
