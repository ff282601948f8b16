package tui

import (
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

// Text renders the session the way Draw lays it out, without colors, the
// bottom border or the cursor.
func Text(session *game.Session) string {
	var (
		b  = session.Board()
		sb strings.Builder
	)
	for row := range b.Height() {
		for col := range b.Width() {
			sb.WriteRune(Glyph(b, mines.Point{Row: row, Col: col}))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strconv.Itoa(b.RemainingMines()) + " mines\n")
	switch session.Status() {
	case game.Won:
		sb.WriteString(wonBanner + "\n")
	case game.Lost:
		sb.WriteString(lostBanner + "\n")
	}
	return sb.String()
}
