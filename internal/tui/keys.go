package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-term/internal/game"
)

var runeCommands = map[rune]game.Command{
	'h': game.MoveLeft,
	'l': game.MoveRight,
	'k': game.MoveUp,
	'j': game.MoveDown,
	'x': game.ToggleFlag,
	'/': game.ToggleFlag,
	' ': game.SweepOne,
	'q': game.Quit,
}

var keyCommands = map[tcell.Key]game.Command{
	tcell.KeyLeft:   game.MoveLeft,
	tcell.KeyRight:  game.MoveRight,
	tcell.KeyUp:     game.MoveUp,
	tcell.KeyDown:   game.MoveDown,
	tcell.KeyEnter:  game.SweepMany,
	tcell.KeyEscape: game.Quit,
	tcell.KeyCtrlC:  game.Quit,
}

// KeyCommand maps a key press to a game command. Unbound keys report false.
func KeyCommand(ev *tcell.EventKey) (game.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeCommands[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key()]
	return cmd, ok
}
