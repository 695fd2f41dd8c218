// Package console runs the interactive game loop on a terminal.
//
// It owns all prompts and text; the scoring rules live in the game package
// and the ranking rules in the leaderboard package.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-console/assets"
	"github.com/robalobadob/wordle/apps/go-console/internal/game"
	"github.com/robalobadob/wordle/apps/go-console/internal/leaderboard"
)

// Session is one run of the program: welcome, rules, then games until the
// player quits.
type Session struct {
	Dict  game.Dictionary
	Board *leaderboard.Board
	// In is where the player's answers are read from.
	In io.Reader
	// Out is where prompts, feedback and standings are written.
	Out io.Writer
	// Color enables ANSI colors in feedback rows.
	Color bool
	// Now defaults to time.Now.
	Now func() time.Time

	sc *bufio.Scanner
}

// Run plays games until the player answers 'q' or input ends. Running out
// of input is a normal quit; only a read failure is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	s.sc = bufio.NewScanner(s.In)
	if s.Now == nil {
		s.Now = time.Now
	}

	fmt.Fprint(s.Out, assets.Banner())
	fmt.Fprint(s.Out, "Press Enter to continue...\n")
	if _, ok := s.readLine(); !ok {
		return s.inputErr()
	}
	fmt.Fprint(s.Out, "\n", assets.Rules())
	fmt.Fprint(s.Out, "Press Enter to start the game.\n")
	if _, ok := s.readLine(); !ok {
		return s.inputErr()
	}

	for {
		if !s.playOne(ctx) {
			return s.inputErr()
		}

		fmt.Fprint(s.Out, "\nPress any key to play again or 'q' to quit: ")
		line, ok := s.readLine()
		if !ok {
			return s.inputErr()
		}
		if c := strings.TrimSpace(line); c != "" && (c[0] == 'q' || c[0] == 'Q') {
			return nil
		}
	}
}

// playOne runs a single game. It returns false if input ran out before the
// game finished; an unfinished game is not recorded.
func (s *Session) playOne(ctx context.Context) bool {
	g := game.New(s.Dict)
	g.StartedAt = s.Now()
	log.Debug().Str("game", g.ID).Msg("new game")

	name, ok := s.readName()
	if !ok {
		return false
	}

attempts:
	for !g.Finished {
		fmt.Fprintf(s.Out, "\n\nAttempt %d: Enter a five-letter word: ", len(g.Attempts)+1)
		guess, ok := s.readToken()
		if !ok {
			log.Debug().Str("game", g.ID).Int("attempts", len(g.Attempts)).Msg("input closed mid-game")
			return false
		}

		a, state, err := g.ApplyGuess(guess)
		switch {
		case errors.Is(err, game.ErrLength):
			fmt.Fprintf(s.Out, "The length of the word should be %d.\n\n", game.WordLength)
			continue
		case errors.Is(err, game.ErrNotInDictionary):
			fmt.Fprint(s.Out, "The word is not in the dictionary.\n\n")
			continue
		case err != nil:
			// ErrFinished: the game is over and is still recorded below.
			log.Error().Err(err).Str("game", g.ID).Msg("apply guess")
			break attempts
		}

		renderFeedback(s.Out, a, s.Color)
		if state == game.StateWon {
			fmt.Fprint(s.Out, "Yay! You guessed the word correctly.\n\n")
			break
		}
		fmt.Fprintf(s.Out, "Current Score: %d\n", g.Score)
		fmt.Fprintf(s.Out, "Time: %d seconds\n", g.Elapsed(s.Now()))
	}

	elapsed := g.Elapsed(s.Now())
	if !g.Won {
		fmt.Fprintf(s.Out, "\nSadly, you couldn't guess the word correctly. \nThe word was %s.\n", g.Target)
	}
	fmt.Fprintf(s.Out, "Final Score: %d\n", g.Score)
	fmt.Fprintf(s.Out, "Total time taken: %d seconds\n", elapsed)

	rec := leaderboard.Record{Name: name, Score: g.Score, TimeTaken: elapsed}
	log.Info().Str("game", g.ID).Str("player", name).Int("score", g.Score).
		Int("seconds", elapsed).Str("state", string(g.State())).Msg("game over")
	if err := s.Board.Submit(ctx, rec); err != nil {
		log.Warn().Err(err).Str("player", name).Msg("leaderboard not saved")
		fmt.Fprintf(s.Out, "Could not save the leaderboard: %v\n", err)
	}
	renderLeaderboard(s.Out, s.Board.Entries())
	return true
}

// readName prompts until a non-blank name is entered. Only the first word
// is kept, so names never contain whitespace.
func (s *Session) readName() (string, bool) {
	for {
		fmt.Fprint(s.Out, "Enter your name: ")
		name, ok := s.readToken()
		if !ok {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
}

// readToken returns the first whitespace-separated word of the next line.
func (s *Session) readToken() (string, bool) {
	line, ok := s.readLine()
	if !ok {
		return "", false
	}
	if f := strings.Fields(line); len(f) > 0 {
		return f[0], true
	}
	return "", true
}

func (s *Session) readLine() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	return s.sc.Text(), true
}

// inputErr is nil at EOF and the scanner error otherwise.
func (s *Session) inputErr() error {
	if err := s.sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
