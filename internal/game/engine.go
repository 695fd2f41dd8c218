// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create new games with a target drawn from the dictionary.
//   - Validate and apply guesses (length, dictionary membership).
//   - Score guesses and keep the running score.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Invalid guesses never consume an attempt.
//   - Score marks a letter Present whenever it occurs anywhere in the target.
//     Target letters are not used up, so a repeated guess letter can match
//     the same target letter more than once. Scores depend on this.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

const (
	WordLength     = words.Length
	MaxAttempts    = 6
	StartingScore  = 1500
	PresentPenalty = 25
	AbsentPenalty  = 50
)

var (
	ErrFinished        = errors.New("game finished")
	ErrLength          = fmt.Errorf("the length of the word should be %d", WordLength)
	ErrNotInDictionary = errors.New("the word is not in the dictionary")
)

// New constructs a new game with a random target from dict.
func New(dict Dictionary) *Game {
	return NewWithTarget(dict, dict.RandomWord())
}

// NewWithTarget constructs a game with a fixed target.
func NewWithTarget(dict Dictionary, target string) *Game {
	return &Game{
		ID:        randomID(),
		Target:    strings.ToUpper(strings.TrimSpace(target)),
		Score:     StartingScore,
		StartedAt: time.Now(),
		dict:      dict,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the accepted attempt and the new state, or an error that leaves
// the game untouched.
//
// State transitions:
//   - All marks Correct → Finished, Won.
//   - Else if MaxAttempts guesses were accepted → Finished (loss).
func (g *Game) ApplyGuess(guess string) (Attempt, State, error) {
	if g.Finished {
		return Attempt{}, g.State(), ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != WordLength {
		return Attempt{}, g.State(), ErrLength
	}
	if !g.dict.Contains(guess) {
		return Attempt{}, g.State(), ErrNotInDictionary
	}

	marks, delta := Score(guess, g.Target)
	a := Attempt{Word: guess, Marks: marks, Delta: delta}
	g.Attempts = append(g.Attempts, a)
	g.Score += delta

	if allCorrect(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Attempts) >= MaxAttempts {
		g.Finished = true
	}
	return a, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int { return MaxAttempts - len(g.Attempts) }

// Elapsed returns whole seconds between the game start and now.
func (g *Game) Elapsed(now time.Time) int {
	return int(now.Sub(g.StartedAt) / time.Second)
}

// Score evaluates guess against target, left to right.
//
// For each position:
//   - same letter as the target → Correct, 0 points.
//   - letter occurs anywhere in the target → Present, -PresentPenalty.
//   - otherwise → Absent, -AbsentPenalty.
//
// The second result is the summed delta. Score is pure.
func Score(guess, target string) ([]Mark, int) {
	res := make([]Mark, len(guess))
	delta := 0
	for i := 0; i < len(guess); i++ {
		switch {
		case i < len(target) && guess[i] == target[i]:
			res[i] = MarkCorrect
		case strings.IndexByte(target, guess[i]) >= 0:
			res[i] = MarkPresent
			delta -= PresentPenalty
		default:
			res[i] = MarkAbsent
			delta -= AbsentPenalty
		}
	}
	return res, delta
}

// allCorrect returns true if all marks are MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
