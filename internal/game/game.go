package game

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

var Log = logrus.New()

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) Ended() bool {
	return s != Playing
}

// Session is one game: a board, the cursor on it and the game status.
// It is driven by a single input stream and is not safe for concurrent use.
type Session struct {
	board  *mines.Board
	cursor mines.Point
	status Status
}

func New(params mines.GameParams, r *rand.Rand) (*Session, error) {
	board, err := mines.NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	return NewSession(board), nil
}

// NewSession starts play on board with the cursor at its center.
func NewSession(board *mines.Board) *Session {
	return &Session{
		board:  board,
		cursor: mines.Point{Row: board.Height() / 2, Col: board.Width() / 2},
		status: Playing,
	}
}

func (s *Session) Board() *mines.Board { return s.board }

func (s *Session) Cursor() mines.Point { return s.cursor }

func (s *Session) Status() Status { return s.status }

func (s *Session) Alive() bool { return s.status != Lost }

// MoveCursor steps the cursor, dropping the move on any axis where it would
// leave the board.
func (s *Session) MoveCursor(dRow, dCol int) {
	if row := s.cursor.Row + dRow; 0 <= row && row < s.board.Height() {
		s.cursor.Row = row
	}
	if col := s.cursor.Col + dCol; 0 <= col && col < s.board.Width() {
		s.cursor.Col = col
	}
}

func (s *Session) SweepOne() int {
	found := s.board.Sweep(s.cursor)
	s.settle(found)
	return found
}

// SweepMany sweeps the cursor cell and all of its neighbors.
func (s *Session) SweepMany() int {
	found := s.board.Sweep(s.cursor)
	found += s.board.SweepNeighbors(s.cursor)
	s.settle(found)
	return found
}

func (s *Session) ToggleFlag() {
	s.board.Flag(s.cursor)
	s.settle(0)
}

// settle moves the session out of Playing once mines were hit or the board
// is cleared.
func (s *Session) settle(found int) {
	if s.status.Ended() {
		return
	}
	switch {
	case found > 0:
		s.board.RevealAllMines()
		s.status = Lost
	case s.board.IsFullyCleared():
		s.status = Won
	default:
		return
	}
	Log.WithFields(logrus.Fields{
		"status": s.status,
		"cursor": s.cursor,
		"mines":  s.board.MineCount(),
		"flags":  s.board.FlagCount(),
	}).Info("game over")
}

// HandleCommand applies cmd and reports whether play should continue. Once
// the game has ended every command but Quit is ignored.
func (s *Session) HandleCommand(cmd Command) bool {
	if cmd == Quit {
		Log.WithField("status", s.status).Debug("quit")
		return false
	}
	if s.status.Ended() {
		return true
	}

	if dRow, dCol, ok := cmd.delta(); ok {
		s.MoveCursor(dRow, dCol)
		return true
	}

	switch cmd {
	case ToggleFlag:
		s.ToggleFlag()
	case SweepOne:
		s.SweepOne()
	case SweepMany:
		s.SweepMany()
	default:
		Log.WithField("command", cmd).Warn("unknown command")
	}
	return true
}
