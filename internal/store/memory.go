// internal/store/memory.go
//
// In-memory implementation of leaderboard.Store.
// Used in tests and when LEADERBOARD_BACKEND=memory.
//
// Characteristics:
//   - Holds a copy of the last saved records.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/go-console/internal/leaderboard"
)

// memory is a slice-backed Store implementation.
type memory struct {
	mu   sync.RWMutex         // guards recs
	recs []leaderboard.Record // last saved snapshot
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore(seed ...leaderboard.Record) leaderboard.Store {
	return &memory{recs: append([]leaderboard.Record(nil), seed...)}
}

// Load returns a copy of the stored records.
func (m *memory) Load(ctx context.Context) ([]leaderboard.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]leaderboard.Record(nil), m.recs...), nil
}

// Save replaces the stored records with a copy of recs.
func (m *memory) Save(ctx context.Context, recs []leaderboard.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs[:0:0], recs...)
	return nil
}
