package analyzer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

const (
	DefaultCoverageCutoff = 0.95
	DefaultFrequencyFloor = 4

	progressEvery = 1000
)

type lemmatizer interface {
	Lemmatize(ctx context.Context, text string) ([]domain.Token, error)
}

type wordSet interface {
	Contains(word string) bool
}

type knownStore interface {
	Has(word string) bool
	Len() int
	AddKnownWord(word string) error
}

type unknownStore interface {
	Has(word string) bool
	Len() int
	AddUnknownWord(word string, frequency int) error
}

type prompter interface {
	PromptTriage(ctx context.Context, view TriageView) (domain.TriageAction, error)
}

// Config holds the triage stopping rule.
type Config struct {
	// CoverageCutoff ends the session once covered/total exceeds it.
	CoverageCutoff float64
	// FrequencyFloor ends the session at the first word whose frequency
	// is at or below it.
	FrequencyFloor int
}

// Service counts allowed lemmas in a corpus and lets the user triage them.
type Service struct {
	cfg        Config
	lemmatizer lemmatizer
	dictionary wordSet
	stopwords  wordSet
	known      knownStore
	unknown    unknownStore
	prompter   prompter
	log        *slog.Logger
}

// NewService creates a new analyzer service.
func NewService(
	log *slog.Logger,
	cfg Config,
	lemmatizer lemmatizer,
	dictionary wordSet,
	stopwords wordSet,
	known knownStore,
	unknown unknownStore,
	prompter prompter,
) *Service {
	if cfg.CoverageCutoff <= 0 {
		cfg.CoverageCutoff = DefaultCoverageCutoff
	}
	if cfg.FrequencyFloor < 0 {
		cfg.FrequencyFloor = DefaultFrequencyFloor
	}
	return &Service{
		cfg:        cfg,
		lemmatizer: lemmatizer,
		dictionary: dictionary,
		stopwords:  stopwords,
		known:      known,
		unknown:    unknown,
		prompter:   prompter,
		log:        log.With("service", "analyzer"),
	}
}

// isAllowed reports whether a lowercase lemma is counted: not a stopword,
// purely alphabetic, not known, and present in the allow dictionary.
func (s *Service) isAllowed(lemma string) bool {
	return !s.stopwords.Contains(lemma) &&
		domain.IsAlpha(lemma) &&
		!s.known.Has(lemma) &&
		s.dictionary.Contains(lemma)
}
