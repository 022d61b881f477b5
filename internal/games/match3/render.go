package match3

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

var kindGlyphs = [engine.KindCount]rune{'■', '●', '▲', '⬢', '◆'}

var kindColors = [engine.KindCount]core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
}

const (
	destroyerGlyph = '✦'
	shrunkGlyph    = '·'
)

// bonusMarker returns the rune drawn next to a bonus token.
func bonusMarker(t engine.Token) (rune, bool) {
	switch t.Bonus {
	case engine.BonusLine:
		if t.Orientation == engine.Vertical {
			return '↕', true
		}
		return '↔', true
	case engine.BonusBomb:
		return '✱', true
	}
	return 0, false
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.session.Board()
	g.renderHUD(dst, board)
	dst.DrawBoxColor(g.layout.Frame, core.ColorGray)

	if board.Phase() == engine.PhaseMainMenu {
		g.renderMenu(dst)
		return
	}

	g.renderCursor(dst, board)
	g.renderTokens(dst, board)
	g.renderDestroyers(dst, board)
	g.renderFooter(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws title, score and the countdown above the board.
func (g *Game) renderHUD(dst *core.Screen, board *engine.Board) {
	frame := g.layout.Frame
	top := frame.Y - hudHeight

	title := g.Title()
	dst.DrawTextColor(frame.X+(frame.W-utf8.RuneCountInString(title))/2, top, title, core.ColorBrightWhite)

	dst.DrawText(frame.X+1, top+1, fmt.Sprintf("Score: %d", board.Score()))

	remaining := math.Ceil(math.Max(board.TimeRemaining(), 0))
	timeStr := fmt.Sprintf("Time: %02d", int(remaining))
	color := core.ColorDefault
	if remaining <= 10 {
		color = core.ColorRed
	}
	dst.DrawTextColor(frame.Right()-1-len(timeStr), top+1, timeStr, color)
}

// renderCursor marks the cursor and the selected cell.
func (g *Game) renderCursor(dst *core.Screen, board *engine.Board) {
	if board.Phase() == engine.PhaseGameOver {
		return
	}
	cur := g.layout.CellRect(g.cursor)
	for x := cur.X + 1; x < cur.Right()-1; x++ {
		dst.SetColor(x, cur.Y+1, '‾', core.ColorGray)
	}

	if sel, ok := board.Selected(); ok {
		r := g.layout.CellRect(sel)
		dst.SetCell(r.X, r.Y, core.Cell{Rune: '[', Color: core.ColorBrightWhite, Bold: true})
		dst.SetCell(r.Right()-1, r.Y, core.Cell{Rune: ']', Color: core.ColorBrightWhite, Bold: true})
	}
}

// renderTokens draws every token at its animated position and scale.
func (g *Game) renderTokens(dst *core.Screen, board *engine.Board) {
	inner := g.layout.Inner()
	view := board.Snapshot()

	for y := 0; y < engine.Size; y++ {
		for x := 0; x < engine.Size; x++ {
			cell := view[y][x]
			if !cell.Occupied {
				continue
			}
			tok := cell.Token
			target := engine.TokenTarget(tok.ID)

			// Vanishing tokens stay visible only while they implode
			if tok.Vanishing && !g.anim.Animating(target) {
				continue
			}

			pos := engine.C(x, y).Vec()
			if p, ok := g.anim.Position(target); ok {
				pos = p
			}
			sx, sy := g.layout.Project(pos)
			if !inner.Contains(sx, sy) {
				continue
			}

			glyph, color := kindGlyphs[tok.Kind], kindColors[tok.Kind]
			scale := g.anim.Scale(target)
			switch {
			case scale < 0.34:
				continue
			case scale < 0.67:
				glyph = shrunkGlyph
			}

			dst.SetCell(sx, sy, core.Cell{Rune: glyph, Color: color, Bold: tok.IsBonus()})
			if marker, ok := bonusMarker(tok); ok && glyph != shrunkGlyph {
				dst.SetCell(sx+1, sy, core.Cell{Rune: marker, Color: core.ColorBrightWhite, Bold: true})
			}
		}
	}
}

// renderDestroyers draws projectiles in flight.
func (g *Game) renderDestroyers(dst *core.Screen, board *engine.Board) {
	inner := g.layout.Inner()
	for _, d := range board.Destroyers() {
		pos := d.Origin.Vec()
		if p, ok := g.anim.Position(engine.DestroyerTarget(d.ID)); ok {
			pos = p
		}
		sx, sy := g.layout.Project(pos)
		if inner.Contains(sx, sy) {
			dst.SetCell(sx, sy, core.Cell{Rune: destroyerGlyph, Color: core.ColorOrange, Bold: true})
		}
	}
}

// renderFooter shows a status line under the board.
func (g *Game) renderFooter(dst *core.Screen, board *engine.Board) {
	y := g.layout.Frame.Bottom()
	if y >= g.screenH {
		return
	}
	var hint string
	switch board.Phase() {
	case engine.PhaseNormal:
		if _, ok := board.Selected(); ok {
			hint = "Pick a neighbour to swap"
		} else {
			hint = "Select a token"
		}
	case engine.PhaseGameOver:
		hint = "R: Play again | Q: Quit"
	default:
		hint = "Resolving... (Tab to skip)"
	}
	dst.DrawTextCenteredColor(y, hint, core.ColorGray)
}

func (g *Game) renderMenu(dst *core.Screen) {
	cx, cy := g.layout.Frame.Center()
	g.drawOverlay(dst, cx, cy, g.Title(), g.Description(), "", "Enter or click to play")

	controls := g.Controls()
	if y := g.layout.Frame.Bottom(); y < g.screenH && utf8.RuneCountInString(controls) <= g.screenW {
		dst.DrawTextCenteredColor(y, controls, core.ColorGray)
	}
}

// renderOverlays draws pause and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, board *engine.Board) {
	cx, cy := g.layout.Frame.Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if board.Phase() == engine.PhaseGameOver {
		stats := board.Stats()
		g.drawOverlay(dst, cx, cy,
			"TIME'S UP",
			fmt.Sprintf("Score: %d", board.Score()),
			fmt.Sprintf("Moves: %d  Reverted: %d", stats.Moves, stats.RevertedSwaps),
			fmt.Sprintf("Longest cascade: %d", stats.LongestCascade),
			fmt.Sprintf("Bombs: %d  Lines: %d", stats.BombsTriggered, stats.LinesTriggered),
			"Press R to play again",
		)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
