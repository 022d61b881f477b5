package engine

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the 8x8 board.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrInvariantViolation signals corrupted board state. Callers treat it
	// as fatal.
	ErrInvariantViolation = errors.New("engine: invariant violation")

	// ErrInvalidTransition is returned when input is not accepted in the
	// current phase.
	ErrInvalidTransition = errors.New("engine: not allowed in current phase")
)
