package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"io"
	"io/fs"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

const envPrefix = "MINES_"

type Settings struct {
	Width       int    `schema:"width"`
	Height      int    `schema:"height"`
	MineCount   int    `schema:"mines"`
	Seed        uint64 `schema:"seed"`
	LogFile     string `schema:"log_file"`
	Script      string `schema:"script"`
	Development bool   `schema:"-"`
}

func Default() Settings {
	return Settings{
		Width:     12,
		Height:    12,
		MineCount: 8,
		LogFile:   "mines.log",
	}
}

// Load resolves settings from defaults, then environ (KEY=value pairs as
// returned by os.Environ), then command-line args. A zero seed is replaced
// with a random one so every game can be replayed from the log.
func Load(args []string, environ []string) (*Settings, error) {
	s := Default()
	if err := s.decodeEnv(environ); err != nil {
		return nil, err
	}
	if err := s.parseFlags(args); err != nil {
		return nil, err
	}
	if err := s.Params().Validate(); err != nil {
		return nil, err
	}
	if s.Seed == 0 {
		s.Seed = new(maphash.Hash).Sum64()
	}
	return &s, nil
}

// LoadDotEnv adds variables from .env files to the process environment
// without overriding what is already set. Missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}
	return nil
}

func (s *Settings) decodeEnv(environ []string) error {
	src := make(map[string][]string)
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		if key == "DEVELOPMENT" {
			s.Development = value != "0"
			continue
		}
		if name, ok := strings.CutPrefix(key, envPrefix); ok {
			src[strings.ToLower(name)] = []string{value}
		}
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(s, src); err != nil {
		return fmt.Errorf("invalid %s* environment: %w", envPrefix, err)
	}
	return nil
}

func (s *Settings) flagSet(size, game *string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("mines", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVarP(size, "size", "s", *size, "size of the board as WIDTHxHEIGHT")
	flags.IntVarP(&s.MineCount, "mines", "m", s.MineCount, "number of mines to add to the board")
	flags.StringVarP(game, "game", "g", *game, "whole game as WxH(M), e.g. 16x16(40); overrides --size and --mines")
	flags.Uint64Var(&s.Seed, "seed", s.Seed, "mine placement seed, 0 picks one at random")
	flags.StringVar(&s.LogFile, "log", s.LogFile, "log file, empty disables logging")
	flags.StringVar(&s.Script, "script", s.Script, `play commands from a file ("-" for stdin) and print the board instead of opening the screen`)
	flags.BoolVar(&s.Development, "dev", s.Development, "log at debug level")
	return flags
}

func (s *Settings) parseFlags(args []string) error {
	var (
		size = s.Size()
		game string
	)
	flags := s.flagSet(&size, &game)
	if err := flags.Parse(args); err != nil {
		return err
	}

	width, height, err := ParseSize(size)
	if err != nil {
		return err
	}
	s.Width, s.Height = width, height

	if game != "" {
		p, err := mines.ParseGameParams(game)
		if err != nil {
			return err
		}
		s.Width, s.Height, s.MineCount = p.Unpack()
	}
	return nil
}

// Usage lists the command-line flags with their defaults.
func Usage() string {
	s := Default()
	size, game := s.Size(), ""
	return s.flagSet(&size, &game).FlagUsages()
}

// ParseSize reads a WIDTHxHEIGHT board size such as 12x12.
func ParseSize(size string) (width, height int, err error) {
	w, h, found := strings.Cut(strings.ToLower(size), "x")
	if !found {
		return 0, 0, fmt.Errorf(`invalid size "%s": expected WIDTHxHEIGHT`, size)
	}
	if width, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf(`invalid size "%s": width must be an int`, size)
	}
	if height, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf(`invalid size "%s": height must be an int`, size)
	}
	return width, height, nil
}

func (s Settings) Size() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s Settings) Params() mines.GameParams {
	return mines.GameParams{
		Width:     s.Width,
		Height:    s.Height,
		MineCount: s.MineCount,
	}
}

func (s Settings) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(s.Seed, s.Seed))
}

func (s Settings) Fields() logrus.Fields {
	return map[string]any{
		"width":       s.Width,
		"height":      s.Height,
		"mines":       s.MineCount,
		"seed":        s.Seed,
		"log_file":    s.LogFile,
		"script":      s.Script,
		"development": s.Development,
	}
}
