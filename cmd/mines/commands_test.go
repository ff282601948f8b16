package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

func TestMain(m *testing.M) {
	game.Log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	m.Run()
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	b, err := mines.NewEmptyBoard(3, 3)
	require.NoError(t, err)
	b.SetMine(mines.Point{Row: 0, Col: 0})
	return game.NewSession(b)
}

func TestExecuteCommand(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		line   string
		cont   bool
		failed bool
	}{
		{"", true, false},
		{"   # comment", true, false},
		{"left", true, false},
		{"Up 5", true, false},
		{"down 0", false, true},
		{"down x", false, true},
		{"jump", false, true},
		{"quit", false, false},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			cont, err := executeCommand(s, test.line)
			assert.Equal(t, test.cont, cont)
			if test.failed {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.Equal(t, mines.Point{Row: 0, Col: 0}, s.Cursor())
}

func TestRunScriptWin(t *testing.T) {
	s := newTestSession(t)
	script := strings.Join([]string{
		"# open the blank corner",
		"down",
		"right",
		"sweep",
		"up 2",
		"left 2",
		"flag",
		"quit",
		"sweep",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, runScript(s, strings.NewReader(script), &out))

	assert.Equal(t, game.Won, s.Status())
	assert.Equal(t,
		"X 1   |\n1 1   |\n      |\n0 mines\nAll mines found, good work\n",
		out.String(),
	)
}

func TestRunScriptError(t *testing.T) {
	s := newTestSession(t)
	err := runScript(s, strings.NewReader("left\nexplode\n"), io.Discard)
	assert.ErrorContains(t, err, "script line 2")
	assert.ErrorIs(t, err, game.ErrBadCommand)
}
