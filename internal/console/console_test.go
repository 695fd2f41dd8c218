package console

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-console/internal/game"
	"github.com/robalobadob/wordle/apps/go-console/internal/leaderboard"
	"github.com/robalobadob/wordle/apps/go-console/internal/store"
	"github.com/robalobadob/wordle/apps/go-console/internal/words"
)

// fixedTarget is a real dictionary whose random pick is pinned.
type fixedTarget struct {
	*words.Dictionary
	target string
}

func (f fixedTarget) RandomWord() string { return f.target }

type failingStore struct{}

func (failingStore) Load(context.Context) ([]leaderboard.Record, error) { return nil, nil }
func (failingStore) Save(context.Context, []leaderboard.Record) error {
	return errors.New("read-only file system")
}

// stepClock advances five seconds on every call.
func stepClock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(5 * time.Second)
		return now
	}
}

func newSession(t *testing.T, list, target, input string, st leaderboard.Store) (*Session, *bytes.Buffer) {
	t.Helper()
	d, err := words.Parse(strings.NewReader(list), rand.NewSource(1))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	b, err := leaderboard.Load(context.Background(), st)
	if err != nil {
		t.Fatalf("leaderboard.Load: %v", err)
	}
	var out bytes.Buffer
	return &Session{
		Dict:  fixedTarget{Dictionary: d, target: target},
		Board: b,
		In:    strings.NewReader(input),
		Out:   &out,
		Now:   stepClock(),
	}, &out
}

// tileRows returns each table row with borders and padding removed.
func tileRows(out string) []string {
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			rows = append(rows, strings.Join(strings.Fields(strings.ReplaceAll(line, "|", " ")), ""))
		}
	}
	return rows
}

func TestRunWin(t *testing.T) {
	s, out := newSession(t, "APPLE\nBERRY\nCRISP\n", "APPLE",
		"\n\nalice\nab\nzzzzz\nberry\napple\nq\n", nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"W       W  EEEEEEE",
		"The rules are:",
		"Attempt 1: Enter a five-letter word:",
		"The length of the word should be 5.",
		"The word is not in the dictionary.",
		"Current Score: 1275",
		"Time: 5 seconds",
		"Attempt 2: Enter a five-letter word:",
		"Yay! You guessed the word correctly.",
		"Final Score: 1275",
		"Total time taken: 10 seconds",
		"--Leaderboard--",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(got, "Attempt 3:") {
		t.Error("invalid guesses consumed an attempt")
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("colors written with Color disabled")
	}

	rows := tileRows(got)
	for _, want := range []string{"_E___", "APPLE", "alice127510"} {
		found := false
		for _, r := range rows {
			if r == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no table row %q in %q", want, rows)
		}
	}

	want := []leaderboard.Record{{Name: "alice", Score: 1275, TimeTaken: 10}}
	if diff := cmp.Diff(want, s.Board.Entries()); diff != "" {
		t.Errorf("unexpected leaderboard (-want +got)\n%s", diff)
	}
}

func TestRunLoss(t *testing.T) {
	input := "\n\ncarol\n" + strings.Repeat("bumpy\n", game.MaxAttempts)
	s, out := newSession(t, "APPLE\nBUMPY\n", "APPLE", input, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Attempt 6: Enter a five-letter word:",
		"The word was APPLE.",
		"Final Score: 150",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(got, "Attempt 7:") || strings.Contains(got, "Yay!") {
		t.Error("game continued past the last attempt")
	}
	if s.Board.Len() != 1 || s.Board.Entries()[0].Score != 150 {
		t.Errorf("unexpected leaderboard: %+v", s.Board.Entries())
	}
}

func TestRunPlayAgain(t *testing.T) {
	input := "\n\nalice\napple\n\nbob smith\nberry\napple\nQ\nnever read\n"
	s, _ := newSession(t, "APPLE\nBERRY\n", "APPLE", input, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []leaderboard.Record{
		{Name: "alice", Score: 1500, TimeTaken: 5},
		{Name: "bob", Score: 1275, TimeTaken: 10},
	}
	if diff := cmp.Diff(want, s.Board.Entries()); diff != "" {
		t.Errorf("unexpected leaderboard (-want +got)\n%s", diff)
	}
}

func TestRunEOFMidGame(t *testing.T) {
	s, _ := newSession(t, "APPLE\nBERRY\n", "APPLE", "\n\ndave\nberry\n", nil)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Board.Len() != 0 {
		t.Errorf("unfinished game was recorded: %+v", s.Board.Entries())
	}
}

func TestRunBlankNameReprompts(t *testing.T) {
	s, out := newSession(t, "APPLE\n", "APPLE", "\n\n\n   \nerin\napple\nq\n", nil)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := strings.Count(out.String(), "Enter your name: "); n != 3 {
		t.Errorf("name prompt shown %d times, want 3", n)
	}
	if s.Board.Entries()[0].Name != "erin" {
		t.Errorf("unexpected leaderboard: %+v", s.Board.Entries())
	}
}

func TestRunPersistFailure(t *testing.T) {
	s, out := newSession(t, "APPLE\n", "APPLE", "\n\nfrank\napple\nq\n", failingStore{})
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Could not save the leaderboard") {
		t.Error("persist failure was not reported")
	}
	if s.Board.Len() != 1 {
		t.Errorf("in-memory leaderboard lost the result: %+v", s.Board.Entries())
	}
}

func TestRunReadError(t *testing.T) {
	s, _ := newSession(t, "APPLE\n", "APPLE", "", nil)
	boom := errors.New("boom")
	s.In = iotest.ErrReader(boom)
	if err := s.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want %v", err, boom)
	}
}

func TestRenderFeedbackColor(t *testing.T) {
	a := game.Attempt{
		Word:  "EERIE",
		Marks: []game.Mark{game.MarkPresent, game.MarkPresent, game.MarkAbsent, game.MarkAbsent, game.MarkCorrect},
	}

	var plain, colored bytes.Buffer
	renderFeedback(&plain, a, false)
	renderFeedback(&colored, a, true)

	if diff := cmp.Diff([]string{"EE__E"}, tileRows(plain.String())); diff != "" {
		t.Errorf("unexpected plain row (-want +got)\n%s", diff)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain row contains escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored row has no escape codes")
	}
}
