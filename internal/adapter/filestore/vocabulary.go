package filestore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// LoadKnownWords reads a known-words file: one word per line.
// Blank lines are ignored, surrounding whitespace is trimmed.
func LoadKnownWords(path string) (*domain.KnownWords, error) {
	known := domain.NewKnownWords()
	err := scanLines(path, func(_ int, line string) error {
		if w := strings.TrimSpace(line); w != "" {
			known.Insert(w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return known, nil
}

// LoadUnknownWords reads an unknown-words file: one "word frequency" pair
// per line. Malformed lines yield a *domain.ParseError.
func LoadUnknownWords(path string) (*domain.UnknownWords, error) {
	unknown := domain.NewUnknownWords()
	err := scanLines(path, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return domain.NewParseError(path, n, fmt.Sprintf("expected 2 fields, got %d", len(fields)))
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil {
			return domain.NewParseError(path, n, fmt.Sprintf("invalid frequency %q", fields[1]))
		}
		unknown.Set(fields[0], freq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unknown, nil
}

// KnownStore is the persisted set of known words.
type KnownStore struct {
	path  string
	words *domain.KnownWords
}

// OpenKnown loads the known-words file at path. A missing file yields an
// empty store; it is created on the first add.
func OpenKnown(path string) (*KnownStore, error) {
	words, err := LoadKnownWords(path)
	if err != nil {
		return nil, fmt.Errorf("filestore: load known words: %w", err)
	}
	return &KnownStore{path: path, words: words}, nil
}

// Words returns the in-memory mirror of the file.
func (s *KnownStore) Words() *domain.KnownWords { return s.words }

// Has reports whether word is known.
func (s *KnownStore) Has(word string) bool { return s.words.Has(word) }

// Len returns the number of known words.
func (s *KnownStore) Len() int { return s.words.Len() }

// AddKnownWord appends word to the file and then to the set.
// Adding a word that is already known is a no-op.
func (s *KnownStore) AddKnownWord(word string) error {
	if s.words.Has(word) {
		return nil
	}
	if err := appendLine(s.path, word+"\n"); err != nil {
		return fmt.Errorf("filestore: add known word: %w", err)
	}
	s.words.Insert(word)
	return nil
}

// UnknownStore is the persisted word to frequency map of unknown words.
type UnknownStore struct {
	path  string
	words *domain.UnknownWords
}

// OpenUnknown loads the unknown-words file at path.
func OpenUnknown(path string) (*UnknownStore, error) {
	words, err := LoadUnknownWords(path)
	if err != nil {
		return nil, fmt.Errorf("filestore: load unknown words: %w", err)
	}
	return &UnknownStore{path: path, words: words}, nil
}

// Words returns the in-memory mirror of the file.
func (s *UnknownStore) Words() *domain.UnknownWords { return s.words }

// Has reports whether word was already triaged as unknown.
func (s *UnknownStore) Has(word string) bool { return s.words.Has(word) }

// Len returns the number of unknown words.
func (s *UnknownStore) Len() int { return s.words.Len() }

// AddUnknownWord appends "word frequency" to the file, then updates the map.
// No duplicate check is made.
func (s *UnknownStore) AddUnknownWord(word string, frequency int) error {
	if err := appendLine(s.path, word+" "+strconv.Itoa(frequency)+"\n"); err != nil {
		return fmt.Errorf("filestore: add unknown word: %w", err)
	}
	s.words.Set(word, frequency)
	return nil
}
