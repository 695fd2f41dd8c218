// Package config collects runtime settings from the environment.
//
// A .env file in the working directory is loaded first if present. Every
// setting has a default, so the game runs with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation error from Load.
var ErrInvalid = errors.New("config: invalid setting")

// Leaderboard backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the runtime settings read by Load.
type Config struct {
	WordsFile          string
	LeaderboardBackend string
	LeaderboardFile    string
	LeaderboardDB      string
	LogLevel           string
	Seed               int64 // used only when HasSeed
	HasSeed            bool
	NoColor            bool
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WordsFile:          getEnv("WORDS_FILE", "all.txt"),
		LeaderboardBackend: strings.ToLower(getEnv("LEADERBOARD_BACKEND", BackendFile)),
		LeaderboardFile:    getEnv("LEADERBOARD_FILE", "leaderboard.txt"),
		LeaderboardDB:      getEnv("LEADERBOARD_DB", "leaderboard.db"),
		LogLevel:           getEnv("LOG_LEVEL", "warn"),
	}
	_, cfg.NoColor = os.LookupEnv("NO_COLOR")

	switch cfg.LeaderboardBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("%w: LEADERBOARD_BACKEND=%q (want file, sqlite or memory)", ErrInvalid, cfg.LeaderboardBackend)
	}

	if v := os.Getenv("WORDLE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: WORDLE_SEED=%q: %w", ErrInvalid, v, err)
		}
		cfg.Seed, cfg.HasSeed = n, true
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
