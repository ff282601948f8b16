package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

const (
	wonBanner  = "All mines found, good work"
	lostBanner = "You stepped on a mine. Nice knowin' ya!"
)

var (
	digitStyles = [9]tcell.Style{
		tcell.StyleDefault,
		tcell.StyleDefault.Foreground(tcell.ColorTeal),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
		tcell.StyleDefault.Foreground(tcell.ColorNavy),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
		tcell.StyleDefault.Foreground(tcell.ColorSilver),
		tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
	mineStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorMaroon)
	flagStyle   = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorNavy)
)

// Glyph is what the player may know about a cell: '*' swept mine, 'X' flag,
// '1'-'8' or ' ' for a swept safe cell, '.' for anything hidden. Hidden
// mines never show through.
func Glyph(b *mines.Board, p mines.Point) rune {
	switch {
	case b.Swept(p):
		if b.MineAt(p) > 0 {
			return '*'
		}
		if n := b.AdjacentMines(p); n > 0 {
			return rune('0' + n)
		}
		return ' '
	case b.Flagged(p):
		return 'X'
	default:
		return '.'
	}
}

func glyphStyle(g rune) tcell.Style {
	switch {
	case '1' <= g && g <= '8':
		return digitStyles[g-'0']
	case g == '*':
		return mineStyle
	case g == 'X':
		return flagStyle
	default:
		return tcell.StyleDefault
	}
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// Draw renders the session: cells two columns apart, a border on the right
// and bottom, the remaining-mines counter and a banner once the game ended.
func Draw(s tcell.Screen, session *game.Session) {
	b := session.Board()
	s.Clear()

	for col := range b.Width()*2 + 1 {
		s.SetContent(col, b.Height(), ' ', nil, borderStyle)
	}
	for row := range b.Height() {
		s.SetContent(b.Width()*2, row, '|', nil, borderStyle)
		for col := range b.Width() {
			g := Glyph(b, mines.Point{Row: row, Col: col})
			s.SetContent(col*2, row, g, nil, glyphStyle(g))
		}
	}

	drawString(s, 0, b.Height()+1,
		strconv.Itoa(b.RemainingMines())+" mines", tcell.StyleDefault)

	switch session.Status() {
	case game.Won:
		drawString(s, 0, b.Height()+2, wonBanner, tcell.StyleDefault)
	case game.Lost:
		drawString(s, 0, b.Height()+2, lostBanner, tcell.StyleDefault)
	}

	cursor := session.Cursor()
	s.ShowCursor(cursor.Col*2, cursor.Row)
	s.Show()
}
