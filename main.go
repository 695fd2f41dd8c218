package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-console/internal/config"
	"github.com/robalobadob/wordle/apps/go-console/internal/console"
	"github.com/robalobadob/wordle/apps/go-console/internal/leaderboard"
	"github.com/robalobadob/wordle/apps/go-console/internal/store"
	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

func main() {
	// Logs go to stderr so they never interleave with the game screen.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	os.Exit(run(os.Stdin, colorable.NewColorableStdout(), tty))
}

// run plays one session and returns the process exit code. Bad
// configuration, an unreadable dictionary, an unopenable leaderboard
// database and a failed input read all exit non-zero.
func run(in io.Reader, out io.Writer, tty bool) int {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
	}

	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}
	dict, err := words.Load(cfg.WordsFile, rand.NewSource(seed))
	if err != nil {
		log.Error().Err(err).Str("file", cfg.WordsFile).Msg("failed to load dictionary")
		return 1
	}

	st, closer, err := openStore(cfg)
	if err != nil {
		log.Error().Err(err).Str("db", cfg.LeaderboardDB).Msg("failed to open leaderboard database")
		return 1
	}
	defer closer.Close()

	ctx := context.Background()
	board, err := leaderboard.Load(ctx, st)
	if err != nil {
		log.Warn().Err(err).Int("records", board.Len()).Msg("leaderboard only partly loaded")
	}

	sess := &console.Session{
		Dict:  dict,
		Board: board,
		In:    in,
		Out:   out,
		Color: !cfg.NoColor && tty,
	}
	if err := sess.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session aborted")
		return 1
	}
	return 0
}

// openStore picks the leaderboard backend. Only SQLite can fail here; the
// text file backend reports problems on first use.
func openStore(cfg *config.Config) (leaderboard.Store, io.Closer, error) {
	switch cfg.LeaderboardBackend {
	case config.BackendSQLite:
		sq, err := store.NewSQLite(cfg.LeaderboardDB)
		if err != nil {
			return nil, nil, fmt.Errorf("open leaderboard database: %w", err)
		}
		return sq, sq, nil
	case config.BackendMemory:
		return store.NewMemoryStore(), io.NopCloser(nil), nil
	default:
		return store.NewFile(cfg.LeaderboardFile), io.NopCloser(nil), nil
	}
}
