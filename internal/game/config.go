package game

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Environment variables supplying flag defaults. main loads them from .env.
const (
	EnvSeed  = "CREATUREBATTLE_SEED"
	EnvData  = "CREATUREBATTLE_DATA"
	EnvLog   = "CREATUREBATTLE_LOG"
	EnvPlain = "CREATUREBATTLE_PLAIN"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible battles.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Plain selects the line-oriented console menu instead of the terminal UI.
	Plain bool

	// DataFile is an optional YAML file replacing the embedded creature data.
	DataFile string

	// LogFile receives battle log lines. Empty disables logging.
	LogFile string

	// TrainerName overrides the trainer name from the data file.
	TrainerName string
}

// LoadConfig parses command line arguments, using getenv for defaults.
func LoadConfig(args []string, getenv func(string) string) (Config, error) {
	var cfg Config

	seed, err := envInt64(getenv, EnvSeed)
	if err != nil {
		return cfg, err
	}
	plain, err := envBool(getenv, EnvPlain)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("creaturebattle", flag.ContinueOnError)
	fs.Int64Var(&cfg.Seed, "seed", seed, "random seed (0 = time based)")
	fs.BoolVar(&cfg.Plain, "plain", plain, "use the plain console menu")
	fs.StringVar(&cfg.DataFile, "data", getenv(EnvData), "YAML creature data file")
	fs.StringVar(&cfg.LogFile, "log", getenv(EnvLog), "battle log file")
	fs.StringVar(&cfg.TrainerName, "trainer", "", "trainer name")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewRand creates the game's random source from Seed.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func envInt64(getenv func(string) string, key string) (int64, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envBool(getenv func(string) string, key string) (bool, error) {
	v := getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
