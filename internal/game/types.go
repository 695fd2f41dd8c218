// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Attempt: one accepted guess with its marks and score delta.
//   - Game: state for a single in-progress or finished game.

package game

import "time"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at the same position.
//   - "present": letter occurs somewhere else in the target.
//   - "absent":  letter does not occur in the target at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary is what a game needs from the word list.
type Dictionary interface {
	Contains(word string) bool
	RandomWord() string
}

// Attempt is one accepted guess.
type Attempt struct {
	Word  string
	Marks []Mark
	Delta int
}

// Game holds the state of a single game session.
type Game struct {
	ID        string    // Random hex id, used to correlate log lines.
	Target    string    // The solution word (uppercase).
	Attempts  []Attempt // Accepted guesses, in order.
	Score     int       // Running score, starts at StartingScore.
	StartedAt time.Time // Wall-clock start, for time taken.
	Finished  bool      // True once the game is over (won or lost).
	Won       bool      // True if the game was finished with a win.

	dict Dictionary
}
