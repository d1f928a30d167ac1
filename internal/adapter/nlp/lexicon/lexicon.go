// Package lexicon is a table-driven Dutch lemmatizer. Tokens are looked up
// in a form to lemma table; forms missing from the table are their own
// lemma.
package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// Lemmatizer maps inflected forms to their lemma.
type Lemmatizer struct {
	lemmas map[string]string
}

// New creates a Lemmatizer from an in-memory form to lemma table.
func New(table map[string]string) *Lemmatizer {
	l := &Lemmatizer{lemmas: make(map[string]string, len(table))}
	for form, lemma := range table {
		l.lemmas[domain.NormalizeWord(form)] = domain.NormalizeWord(lemma)
	}
	return l
}

// Load reads a "form\tlemma" table from path. Blank lines and lines
// starting with '#' are skipped. A missing file yields a lemmatizer with
// an empty table, which lowercases tokens only.
func Load(path string, logger *slog.Logger) (*Lemmatizer, error) {
	log := logger.With("adapter", "lexicon")

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("lemma table not found, lemmas fall back to lowercase forms", slog.String("path", path))
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	table := make(map[string]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, lemma, ok := strings.Cut(line, "\t")
		if !ok || strings.TrimSpace(form) == "" || strings.TrimSpace(lemma) == "" {
			return nil, domain.NewParseError(path, n, "expected form<TAB>lemma")
		}
		table[form] = lemma
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}

	log.Debug("lemma table loaded", slog.String("path", path), slog.Int("forms", len(table)))
	return New(table), nil
}

// Lemmatize tokenizes text and returns one token per word or punctuation
// mark. The lemma of a word is its table entry or its lowercase form;
// punctuation is its own lemma.
func (l *Lemmatizer) Lemmatize(ctx context.Context, text string) ([]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts := Tokenize(text)
	tokens := make([]domain.Token, 0, len(parts))
	for _, surface := range parts {
		form := domain.NormalizeWord(surface)
		lemma, ok := l.lemmas[form]
		if !ok {
			lemma = form
		}
		tokens = append(tokens, domain.Token{Lemma: lemma, Surface: surface})
	}
	return tokens, nil
}

// Len returns the number of forms in the table.
func (l *Lemmatizer) Len() int { return len(l.lemmas) }
