// internal/words/words.go
//
// Dictionary of valid guesses for the game.
//
// Responsibilities:
//   - Load the word list from a file (one word per line).
//   - Normalize to uppercase, drop blank lines and anything that is not
//     exactly five ASCII letters, and collapse duplicates.
//   - Membership lookup and uniform random selection.
//
// Constraints:
//   • The dictionary is immutable once loaded.
//   • An unreadable or empty list is a load error; callers treat it as fatal.
//   • The random source is owned by the Dictionary and injected at load time,
//     so selection is reproducible under a fixed seed.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Length is the number of letters in every dictionary word.
const Length = 5

var (
	// ErrLoad is wrapped by every error returned from Load and Parse.
	ErrLoad = errors.New("words: load failed")
	// ErrEmpty reports a word list with no usable words.
	ErrEmpty = errors.New("words: dictionary is empty")
)

// Dictionary is an immutable set of uppercase five-letter words.
type Dictionary struct {
	list []string            // file order, deduplicated
	set  map[string]struct{} // lookup
	rnd  *rand.Rand
}

// Load opens path and parses it as a word list.
func Load(path string, src rand.Source) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrLoad, path, err)
	}
	defer f.Close()

	d, err := Parse(f, src)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", path).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader, src rand.Source) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{}), rnd: rand.New(src)}

	var dropped int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := Normalize(sc.Text())
		if w == "" {
			continue
		}
		if len(w) != Length || !isAlpha(w) {
			dropped++
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrLoad, err)
	}
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("ignored malformed dictionary lines")
	}
	if len(d.list) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrLoad, ErrEmpty)
	}
	return d, nil
}

// Normalize trims surrounding whitespace and uppercases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is in the dictionary. Case and surrounding
// whitespace are ignored.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[Normalize(w)]
	return ok
}

// RandomWord returns a uniformly chosen word.
func (d *Dictionary) RandomWord() string {
	return d.list[d.rnd.Intn(len(d.list))]
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }
