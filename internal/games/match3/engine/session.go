package engine

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Session owns the current board and replaces it wholesale on reset.
type Session struct {
	settings Settings
	rng      *rand.Rand
	log      *log.Logger
	board    *Board
	games    int
}

// NewSession creates a session whose first board waits in the main menu.
func NewSession(settings Settings, rng *rand.Rand, logger *log.Logger) (*Session, error) {
	s := &Session{settings: settings, rng: rng, log: logger}
	b, err := New(settings, rng, logger)
	if err != nil {
		return nil, err
	}
	s.board = b
	s.games = 1
	return s, nil
}

// Board returns the current board. The pointer changes after Reset.
func (s *Session) Board() *Board {
	return s.board
}

// Games returns the number of boards created by this session.
func (s *Session) Games() int {
	return s.games
}

// Reset discards a finished board and starts a fresh one in PhaseNormal.
func (s *Session) Reset() error {
	if s.board.Phase() != PhaseGameOver {
		return fmt.Errorf("%w: reset in %v", ErrInvalidTransition, s.board.Phase())
	}
	b, err := New(s.settings, s.rng, s.log)
	if err != nil {
		return err
	}
	if err := b.Start(); err != nil {
		return err
	}
	s.board = b
	s.games++
	return nil
}

// Start leaves the main menu of the current board.
func (s *Session) Start() error {
	return s.board.Start()
}

// Click forwards to the current board.
func (s *Session) Click(at Coord) error {
	return s.board.Click(at)
}

// Tick forwards to the current board.
func (s *Session) Tick(dt float64) error {
	return s.board.Tick(dt)
}
