// internal/store/file.go
//
// Plain-text leaderboard storage: one record per line, "name score timeTaken".
//
// Reading is token based, so any whitespace separates fields. Loading stops
// at the first triple that does not parse; everything before it is kept and
// the rest of the file is ignored. A missing file is an empty leaderboard.
//
// Saving writes a temp file next to the target and renames it over the
// target, so a crash mid-write never leaves a truncated leaderboard.

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-console/internal/leaderboard"
)

var _ leaderboard.Store = (*File)(nil)

// File is a leaderboard.Store backed by a text file.
type File struct{ path string }

// NewFile returns a text-file store at path.
func NewFile(path string) *File { return &File{path: path} }

// Load parses the file into records.
func (s *File) Load(ctx context.Context) ([]leaderboard.Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("file", s.path).Msg("no leaderboard file yet")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var out []leaderboard.Record
	for {
		var tok [3]string
		n := 0
		for n < 3 && sc.Scan() {
			tok[n] = sc.Text()
			n++
		}
		if n < 3 {
			if n > 0 {
				log.Warn().Str("file", s.path).Int("records", len(out)).Msg("leaderboard file ends with an incomplete record")
			}
			break
		}
		score, err1 := strconv.Atoi(tok[1])
		secs, err2 := strconv.Atoi(tok[2])
		if err1 != nil || err2 != nil {
			log.Warn().Str("file", s.path).Int("records", len(out)).Str("name", tok[0]).
				Msg("malformed leaderboard record, ignoring the rest of the file")
			break
		}
		out = append(out, leaderboard.Record{Name: tok[0], Score: score, TimeTaken: secs})
	}
	if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
		log.Warn().Str("file", s.path).Int("records", len(out)).
			Msg("leaderboard record too long, ignoring the rest of the file")
	} else if err != nil {
		return out, fmt.Errorf("read %s: %w", s.path, err)
	}
	return out, nil
}

// Save atomically replaces the file with recs, one per line.
func (s *File) Save(ctx context.Context, recs []leaderboard.Record) error {
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	// No-op once the rename has happened.
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}

	w := bufio.NewWriter(tmp)
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%s %d %d\n", r.Name, r.Score, r.TimeTaken); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", tmp.Name(), err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}
	return nil
}
