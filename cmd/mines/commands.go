package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/tui"
)

// executeCommand runs one script line: a command name with an optional
// repeat count, e.g. "down 3". Blank lines and # comments are skipped.
func executeCommand(s *game.Session, line string) (cont bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true, nil
	}

	name, countStr, found := strings.Cut(line, " ")
	count := 1
	if found {
		if count, err = strconv.Atoi(strings.TrimSpace(countStr)); err != nil || count < 1 {
			return false, errors.New("repeat count must be a positive int")
		}
	}

	cmd, err := game.ParseCommand(name)
	if err != nil {
		return false, err
	}
	for range count {
		if !s.HandleCommand(cmd) {
			return false, nil
		}
	}
	return true, nil
}

// runScript plays the commands read from r, one per line, and writes the
// final board to w.
func runScript(s *game.Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		cont, err := executeCommand(s, scanner.Text())
		if err != nil {
			return fmt.Errorf("script line %d: %w", n, err)
		}
		if !cont {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read script: %w", err)
	}
	_, err := io.WriteString(w, tui.Text(s))
	return err
}
