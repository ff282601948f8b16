package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogger builds the application logger. The terminal belongs to the game
// screen, so entries only go to the rotating log file, if one is set.
func NewLogger(s Settings) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	level := logrus.InfoLevel
	if s.Development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if s.LogFile == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   s.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to set up log file %s: %w", s.LogFile, err)
	}
	log.AddHook(hook)

	return log, nil
}
