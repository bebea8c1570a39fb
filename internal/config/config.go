// Package config loads drills settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the settings shared by every drills subcommand.
type Config struct {
	Seed    uint64 `env:"DRILLS_SEED"`
	Workers int    `env:"DRILLS_WORKERS" envDefault:"4"`
	Verbose bool   `env:"DRILLS_VERBOSE"`
	Rounds  int    `env:"DRILLS_ROUNDS"  envDefault:"10"`
	Decks   int    `env:"DRILLS_DECKS"   envDefault:"6"`
}

// LoadDotEnv loads variables from the given files (".env" when none) into
// the process environment. Variables already set win; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}

	return nil
}

// Parse reads the environment, then registers the shared flags on flags and
// lets args override the environment values.
func Parse(flags *pflag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flags.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "number of concurrent workers")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable verbose logging")
	flags.IntVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "maximum number of game rounds")
	flags.IntVar(&cfg.Decks, "decks", cfg.Decks, "number of decks in the blackjack shoe")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every numeric setting is in range.
func (c Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	case c.Rounds <= 0:
		return fmt.Errorf("rounds %d: %w", c.Rounds, ErrInvalidConfig)
	case c.Decks <= 0:
		return fmt.Errorf("decks %d: %w", c.Decks, ErrInvalidConfig)
	}

	return nil
}

// Rand returns a generator seeded from Seed, or from a random seed when Seed is zero.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
