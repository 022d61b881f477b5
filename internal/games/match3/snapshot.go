package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Phase    string
	Score    int
	TimeLeft float64
	Cursor   engine.Coord
	Selected *engine.Coord
	Cells    [engine.Size][engine.Size]engine.CellView
	Effects  int // effects the animator is running
	Games    int
	Paused   bool
	TooSmall bool
	Stats    engine.Stats
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.session.Board()
	snap := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Phase:    board.Phase().String(),
		Score:    board.Score(),
		TimeLeft: board.TimeRemaining(),
		Cursor:   g.cursor,
		Cells:    board.Snapshot(),
		Effects:  g.anim.Len(),
		Games:    g.session.Games(),
		Paused:   g.paused,
		TooSmall: g.layout.TooSmall,
		Stats:    board.Stats(),
	}
	if sel, ok := board.Selected(); ok {
		snap.Selected = &sel
	}
	return snap
}
