// internal/leaderboard/leaderboard.go
//
// Top-N leaderboard of best scores.
//
// Invariants, after every mutation:
//   - at most Size records,
//   - no two records share a name,
//   - sorted by score, highest first.
//
// Equal scores keep insertion order (stable sort); that order is not part
// of the contract. The Board owns its records; callers only submit
// candidates and read copies.

package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// Size is the number of records kept.
const Size = 5

// ErrInvalidName rejects names the persisted format cannot carry.
var ErrInvalidName = errors.New("leaderboard: name must be non-empty and contain no whitespace")

// Record is one player's best result.
type Record struct {
	Name      string
	Score     int
	TimeTaken int // seconds
}

// Store persists the full leaderboard.
// Implementations may be backed by a text file, SQLite, or memory.
type Store interface {
	// Load returns the persisted records in any order.
	Load(ctx context.Context) ([]Record, error)

	// Save replaces the persisted records with recs.
	Save(ctx context.Context, recs []Record) error
}

// Board is the in-memory leaderboard bound to a Store.
type Board struct {
	store   Store
	records []Record
}

// Load reads the board from st, then sorts and trims it. Duplicate names
// in storage collapse to their best score.
// On a store error the board keeps whatever records the store returned
// alongside it and is still usable; the error is returned as well.
func Load(ctx context.Context, st Store) (*Board, error) {
	b := &Board{store: st}
	recs, err := st.Load(ctx)
	for _, r := range recs {
		b.merge(r)
	}
	b.normalize()
	if err != nil {
		return b, fmt.Errorf("load leaderboard: %w", err)
	}
	log.Debug().Int("records", len(b.records)).Msg("leaderboard loaded")
	return b, nil
}

// Submit merges rec into the board and persists the result.
//
//   - An existing name is replaced only by a strictly higher score.
//   - A new name is always appended, then ranking trims the board.
//
// The in-memory board is updated even when Save fails; the Save error is
// returned so the caller can report it.
func (b *Board) Submit(ctx context.Context, rec Record) error {
	if !validName(rec.Name) {
		return ErrInvalidName
	}

	b.merge(rec)
	b.normalize()

	if err := b.store.Save(ctx, b.Entries()); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// Entries returns a copy of the ranked records.
func (b *Board) Entries() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Len returns the number of records on the board.
func (b *Board) Len() int { return len(b.records) }

// merge keeps the best record per name.
func (b *Board) merge(rec Record) {
	for i := range b.records {
		if b.records[i].Name == rec.Name {
			if rec.Score > b.records[i].Score {
				b.records[i] = rec
			}
			return
		}
	}
	b.records = append(b.records, rec)
}

// normalize sorts by score descending and truncates to Size.
func (b *Board) normalize() {
	sort.SliceStable(b.records, func(i, j int) bool {
		return b.records[i].Score > b.records[j].Score
	})
	if len(b.records) > Size {
		b.records = b.records[:Size]
	}
}

func validName(name string) bool {
	return name != "" && strings.IndexFunc(name, unicode.IsSpace) < 0
}
