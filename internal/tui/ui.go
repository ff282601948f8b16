package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-term/internal/game"
)

type UI struct {
	screen  tcell.Screen
	session *game.Session
	log     logrus.FieldLogger
}

// New binds an initialised screen to a session. The caller owns the screen
// and must Fini it.
func New(screen tcell.Screen, session *game.Session, log logrus.FieldLogger) *UI {
	return &UI{
		screen:  screen,
		session: session,
		log:     log,
	}
}

// Run draws the board and handles input until the player quits or ctx is
// done. Events are handled one at a time, in order.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return u.loop(gCtx, events)
	})
	return g.Wait()
}

func (u *UI) loop(ctx context.Context, events <-chan tcell.Event) error {
	Draw(u.screen, u.session)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !u.handle(ev) {
				return nil
			}
			Draw(u.screen, u.session)
		}
	}
}

// handle reports whether the loop should go on.
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		cmd, ok := KeyCommand(ev)
		if !ok {
			return true
		}
		before := u.session.Status()
		cont := u.session.HandleCommand(cmd)
		u.log.WithFields(logrus.Fields{
			"command": cmd,
			"cursor":  u.session.Cursor(),
			"status":  u.session.Status(),
		}).Debug("handled command")
		if after := u.session.Status(); after != before {
			u.log.WithField("status", after).Info("game ended")
		}
		return cont
	}
	return true
}
