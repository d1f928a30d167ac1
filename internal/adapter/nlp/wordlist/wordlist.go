// Package wordlist provides the word-membership sets used to filter
// lemmas: the allow dictionary and the stopword list.
package wordlist

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

//go:embed stopwords_nl.txt
var dutchStopwords string

// Set is an immutable set of normalized words.
type Set struct {
	words map[string]struct{}
}

func newSet(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = domain.NormalizeWord(w); w != "" {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word is in the set. The caller passes a
// normalized (lowercase) word.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int { return len(s.words) }

// LoadDictionary reads the allow dictionary from a JSON file. The file is
// either an object whose keys are the words (values are ignored) or an
// array of strings.
func LoadDictionary(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read dictionary: %w", err)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		words := make([]string, 0, len(obj))
		for w := range obj {
			words = append(words, w)
		}
		return newSet(words), nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, fmt.Errorf("wordlist: decode dictionary %s: %w", path, err)
	}
	return newSet(arr), nil
}

// Stopwords returns the built-in Dutch stopword list, extended with the
// words of extraPath (one per line) when it is non-empty. A missing extra
// file is an error.
func Stopwords(extraPath string) (*Set, error) {
	words := strings.Fields(dutchStopwords)
	if extraPath == "" {
		return newSet(words), nil
	}

	f, err := os.Open(extraPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("wordlist: stopwords %s: %w", extraPath, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("wordlist: open stopwords: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read stopwords: %w", err)
	}
	return newSet(words), nil
}
