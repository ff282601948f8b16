package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/tui"
)

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	settings, err := config.Load(os.Args[1:], os.Environ())
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]\n%s", os.Args[0], config.Usage())
		return nil
	}
	if err != nil {
		return err
	}

	log, err := config.NewLogger(*settings)
	if err != nil {
		return err
	}
	mines.Log = log
	game.Log = log

	log.WithFields(settings.Fields()).Info("starting up")

	session, err := game.New(settings.Params(), settings.Rand())
	if err != nil {
		return fmt.Errorf("unable to set up game: %w", err)
	}

	if settings.Script != "" {
		return playScript(session, settings.Script)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialise screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	err = tui.New(screen, session, log).Run(ctx)
	log.WithField("status", session.Status()).Info("exiting")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func playScript(session *game.Session, path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("unable to open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	return runScript(session, in, os.Stdout)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		os.Exit(1)
	}
}
