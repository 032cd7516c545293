// Package dictionary reads word lists from plain text files.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DictionaryLoader = (*Loader)(nil)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

// Loader implements ports.DictionaryLoader for one-word-per-line text files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDictionaryRead.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	words, err := Parse(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDictionaryRead.Error()), "path", path)
	}
	return words, nil
}

// Parse reads words from r, one per line. Surrounding whitespace is trimmed,
// blank lines are skipped, words are lowercased and only the first occurrence
// of each word is kept.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	seen := make(map[string]struct{})

	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
