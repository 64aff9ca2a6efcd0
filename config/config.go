package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	"war/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// DefaultEnvFile is read when present. Variables already set in the environment win.
const DefaultEnvFile = ".env"

type Config struct {
	Seed      uint64
	SeedSet   bool // Without a seed one is taken from the clock
	MaxRounds int  // 0 means no limit for a single game
	LogLevel  string
	Games     int // More than 1 switches to batch mode
	Workers   int
	Quiet     bool // Play without narrating
}

func Default() Config {
	return Config{
		LogLevel: zerolog.LevelWarnValue,
		Games:    1,
		Workers:  meta.WORKERS,
	}
}

// Load builds the configuration from defaults, the env file, the environment
// and finally the command line, each overriding the previous one.
func Load(args []string, envFile string) (Config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = values
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	return Parse(args, lookup)
}

// Parse applies environment values from lookup, then flags from args, over the defaults.
func Parse(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("war", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, any value including 0 (default: current time)")
	flags.IntVar(&cfg.MaxRounds, "max-rounds", cfg.MaxRounds, "Stop an undecided game after this many rounds (0 = no limit)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error, disabled)")
	flags.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play (more than 1 runs a batch)")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of worker goroutines for a batch")
	flags.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Do not narrate the game")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("failed to parse flags: %w", err)
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.SeedSet = true
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("WAR_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid WAR_SEED %q: %w", v, err)
		}
		c.Seed = seed
		c.SeedSet = true
	}
	if v, ok := lookup("WAR_MAX_ROUNDS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_MAX_ROUNDS %q: %w", v, err)
		}
		c.MaxRounds = n
	}
	if v, ok := lookup("WAR_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("WAR_GAMES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_GAMES %q: %w", v, err)
		}
		c.Games = n
	}
	if v, ok := lookup("WAR_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_WORKERS %q: %w", v, err)
		}
		c.Workers = n
	}
	if v, ok := lookup("WAR_QUIET"); ok && v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WAR_QUIET %q: %w", v, err)
		}
		c.Quiet = quiet
	}
	return nil
}

func (c Config) Validate() error {
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds must not be negative, got %d", c.MaxRounds)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Batch reports whether more than one game was requested.
func (c Config) Batch() bool {
	return c.Games > 1
}

// ResolveSeed returns the configured seed, or one taken from now when unset.
func (c Config) ResolveSeed(now time.Time) uint64 {
	if c.SeedSet {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
