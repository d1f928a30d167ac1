package merger

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

type lemmatizer interface {
	Lemmatize(ctx context.Context, text string) ([]domain.Token, error)
}

type knownStore interface {
	Has(word string) bool
	AddKnownWord(word string) error
}

// Service folds the sentences of an exported deck into the known words.
type Service struct {
	lemmatizer lemmatizer
	known      knownStore
	log        *slog.Logger
}

// NewService creates a new merger service.
func NewService(log *slog.Logger, lemmatizer lemmatizer, known knownStore) *Service {
	return &Service{
		lemmatizer: lemmatizer,
		known:      known,
		log:        log.With("service", "merger"),
	}
}

// MergeFile merges the deck export at path. It returns the number of words
// added to the known set.
func (s *Service) MergeFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	added, err := s.Merge(ctx, f)
	if err != nil {
		return added, fmt.Errorf("merge %s: %w", path, err)
	}
	s.log.InfoContext(ctx, "deck merged", slog.String("path", path), slog.Int("added", added))
	return added, nil
}

// Merge reads a tab-separated deck export. Blank lines and lines starting
// with '#' are skipped. The first field of every other line is a sentence;
// each alphabetic lemma of it that is not yet known is added.
func (s *Service) Merge(ctx context.Context, r io.Reader) (int, error) {
	added := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		sentence, ok := deckSentence(scanner.Text())
		if !ok {
			continue
		}

		tokens, err := s.lemmatizer.Lemmatize(ctx, sentence)
		if err != nil {
			return added, fmt.Errorf("lemmatize line %d: %w", lineNo, err)
		}

		for _, tok := range tokens {
			lemma := domain.NormalizeWord(tok.Lemma)
			if !domain.IsAlpha(lemma) || s.known.Has(lemma) {
				continue
			}
			if err := s.known.AddKnownWord(lemma); err != nil {
				return added, fmt.Errorf("add %q: %w", lemma, err)
			}
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read deck: %w", err)
	}
	return added, nil
}

// deckSentence extracts the lowercased sentence field of a deck line.
func deckSentence(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	field, _, _ := strings.Cut(line, "\t")
	field = strings.TrimSpace(field)
	if field == "" {
		return "", false
	}
	return domain.LowerText(field), true
}
