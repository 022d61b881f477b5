// Package match3 adapts the match-3 engine to the platform's Game
// interface: it maps input to board clicks, drives the effect animator
// and draws the board into the screen buffer.
package match3

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3/fx"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode selects the countdown used by a game.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeBlitz   Mode = "blitz"
)

// Game implements the match-3 arcade mode.
type Game struct {
	mode     Mode
	log      *log.Logger
	settings engine.Settings
	session  *engine.Session
	anim     *fx.Animator

	layout  Layout
	cursor  engine.Coord
	dt      float64
	tick    uint64
	paused  bool
	screenW int
	screenH int
}

// Package-level options, set by the CLI before games are created.
var (
	configPath string
	difficulty = config.DifficultyNormal
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the YAML file loaded on Reset. Empty uses the default
// search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the timer preset applied on Reset.
func SetDifficulty(p config.DifficultyPreset) {
	difficulty = p
}

// SetLogger sets the logger handed to new games and their boards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a classic one-minute game.
func New() *Game {
	return &Game{mode: ModeClassic, anim: fx.New()}
}

// NewBlitz creates a game on the short timer.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz, anim: fx.New()}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_blitz", func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "match3_blitz"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Match-3 (Blitz)"
	}
	return "Match-3"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	if g.mode == ModeBlitz {
		return "Half the time, same board"
	}
	return "Swap tokens, clear lines, beat the clock"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Mouse or arrows+Space: Swap | Tab: Skip | P: Pause | R: Restart | Q: Quit"
}

// Settings builds engine settings from a config for this game's mode.
func (g *Game) Settings(cfg config.Match3Config) engine.Settings {
	limit := cfg.Timer.Seconds
	if g.mode == ModeBlitz {
		limit = cfg.Timer.BlitzSeconds
	}
	return engine.Settings{
		TimeLimit:       limit,
		SwapDuration:    cfg.Animation.SwapSeconds,
		FallDuration:    cfg.Animation.FallSeconds,
		ImplodeDuration: cfg.Animation.ImplodeSeconds,
		SpawnDuration:   cfg.Animation.SpawnSeconds,
		DestroyerSpeed:  cfg.Animation.DestroyerSpeed,
		PulsePeriod:     cfg.Animation.PulsePeriod,
		Kinds:           cfg.Board.Kinds,
	}
}

// loadSettings reads the configuration, falling back to the defaults when
// the file is unusable.
func (g *Game) loadSettings() engine.Settings {
	cfg, err := config.LoadMatch3(configPath)
	if err == nil {
		config.ApplyMatch3Preset(&cfg, difficulty)
		err = config.Validate(cfg)
	}
	if err != nil {
		g.log.Warn("using default configuration", "err", err)
		cfg = config.DefaultMatch3Config()
		config.ApplyMatch3Preset(&cfg, difficulty)
	}
	return g.Settings(cfg)
}

// Reset builds a new session. The board waits in its main menu until the
// player starts it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger.WithPrefix(g.ID())
	g.settings = g.loadSettings()

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1 / float64(tickRate)
	g.tick = 0
	g.paused = false
	g.cursor = engine.C(engine.Size/2, engine.Size/2)
	g.anim.Reset()
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	session, err := engine.NewSession(g.settings, rand.New(rand.NewSource(cfg.Seed)), g.log)
	g.check(err)
	g.session = session
}

// Resize moves the board for a new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, h)
}

// Board returns the current board.
func (g *Game) Board() *engine.Board {
	return g.session.Board()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.layout.TooSmall {
		return core.StepResult{State: g.State()}
	}

	board := g.session.Board()
	switch board.Phase() {
	case engine.PhaseMainMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionSelect) || len(in.Clicks) > 0 {
			g.check(g.session.Start())
		}
	case engine.PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
	default:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.handleInput(in)
		}
	}

	if !g.paused {
		g.advance()
	}
	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor and turns selections and clicks into board
// clicks.
func (g *Game) handleInput(in core.InputFrame) {
	board := g.session.Board()

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(core.ActionSkip) {
		g.anim.Apply(board.TakeEffectMessages())
		g.anim.Finish(board)
	}

	if in.Has(core.ActionSelect) {
		g.check(board.Click(g.cursor))
	}
	for _, p := range in.Clicks {
		if c, ok := g.layout.CellAt(p.X, p.Y); ok {
			g.cursor = c
			g.check(board.Click(c))
		}
	}
}

func (g *Game) moveCursor(dx, dy int) {
	next := g.cursor.Add(dx, dy)
	if next.InBounds() {
		g.cursor = next
	}
}

// advance runs the animator and the board for one tick. Effects requested
// during the board tick are picked up in the same frame.
func (g *Game) advance() {
	board := g.session.Board()
	g.anim.Apply(board.TakeEffectMessages())
	g.anim.Advance(g.dt, board)
	g.check(g.session.Tick(g.dt))
	g.anim.Apply(board.TakeEffectMessages())
}

func (g *Game) restart() {
	g.check(g.session.Reset())
	g.anim.Reset()
	g.paused = false
	g.log.Info("new board", "games", g.session.Games())
}

// check reports engine errors. Rejected input is ignored; a broken board
// invariant stops the game.
func (g *Game) check(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, engine.ErrInvariantViolation) {
		g.log.Error("board invariant violated", "err", err)
		panic(err)
	}
	if errors.Is(err, engine.ErrInvalidTransition) || errors.Is(err, engine.ErrOutOfBounds) {
		g.log.Debug("input rejected", "err", err)
		return
	}
	g.log.Error("engine failure", "err", err)
	panic(err)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	board := g.session.Board()
	stats := board.Stats()
	return core.GameState{
		Score:    board.Score(),
		GameOver: board.Phase() == engine.PhaseGameOver,
		Paused:   g.paused || g.layout.TooSmall,
		Stats: core.SessionStats{
			Moves:          stats.Moves,
			RevertedSwaps:  stats.RevertedSwaps,
			LongestCascade: stats.LongestCascade,
			BombsTriggered: stats.BombsTriggered,
			LinesTriggered: stats.LinesTriggered,
			Duration:       g.settings.TimeLimit - core.ClampF(board.TimeRemaining(), 0, g.settings.TimeLimit),
		},
	}
}
