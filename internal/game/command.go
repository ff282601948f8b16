package game

import (
	"fmt"
	"strings"
)

type Command uint8

const (
	MoveLeft Command = iota + 1
	MoveRight
	MoveUp
	MoveDown
	ToggleFlag
	SweepOne
	SweepMany
	Quit
	LAST_COMMAND
)

var commandNames = map[Command]string{
	MoveLeft:   "left",
	MoveRight:  "right",
	MoveUp:     "up",
	MoveDown:   "down",
	ToggleFlag: "flag",
	SweepOne:   "sweep",
	SweepMany:  "chord",
	Quit:       "quit",
}

var ErrBadCommand error

func init() {
	var allowed []string
	for c := MoveLeft; c < LAST_COMMAND; c++ {
		allowed = append(allowed, "'"+c.String()+"'")
	}
	ErrBadCommand = fmt.Errorf("command must be one of %s", strings.Join(allowed, ", "))
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range commandNames {
		if name == s {
			return c, nil
		}
	}
	return 0, ErrBadCommand
}

// delta is the cursor step for a move command.
func (c Command) delta() (dRow, dCol int, ok bool) {
	switch c {
	case MoveLeft:
		return 0, -1, true
	case MoveRight:
		return 0, 1, true
	case MoveUp:
		return -1, 0, true
	case MoveDown:
		return 1, 0, true
	}
	return 0, 0, false
}
