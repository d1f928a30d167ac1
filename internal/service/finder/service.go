package finder

import (
	"context"
	"iter"
	"log/slog"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

const (
	DefaultMaxDuplicates = 20
	DefaultMaxExamined   = 300
	DefaultPerfectWanted = 10
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

type corpusStore interface {
	Has(word string) bool
	Len() int
	Append(rec domain.OutputRecord) error
	WriteAudio(name string, data []byte) error
}

type sentenceProvider interface {
	Examples(ctx context.Context, word string) iter.Seq2[domain.Example, error]
}

type translator interface {
	Translate(ctx context.Context, sentence string) (string, error)
}

type translationCache interface {
	Get(sentence string) (string, bool)
	Put(sentence, translation string) error
}

type synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type etymologyLookup interface {
	Lookup(ctx context.Context, term string) ([]domain.Etymology, error)
}

type reviewer interface {
	Review(ctx context.Context, view ReviewView) (domain.ReviewAction, error)
}

// Config holds the retrieval bounds and display labels.
type Config struct {
	MaxDuplicates int
	MaxExamined   int
	PerfectWanted int
	// PerfectScore is the highest score that counts as a perfect candidate.
	PerfectScore int

	ProviderLabel   string
	TranslatorLabel string
}

// Deps groups the collaborators of the finder.
type Deps struct {
	Lemmatizer  lemmatizer
	Stopwords   wordSet
	Known       knownStore
	Corpus      corpusStore
	Provider    sentenceProvider
	Translator  translator
	Cache       translationCache
	Synthesizer synthesizer
	Lookup      etymologyLookup
	Reviewer    reviewer
}

// Service finds, ranks and curates example sentences for unknown words.
type Service struct {
	cfg         Config
	lemmatizer  lemmatizer
	stopwords   wordSet
	known       knownStore
	corpus      corpusStore
	provider    sentenceProvider
	translator  translator
	cache       translationCache
	synthesizer synthesizer
	lookup      etymologyLookup
	reviewer    reviewer
	newAudioID  func() string
	log         *slog.Logger
}

// NewService creates a new finder service.
func NewService(log *slog.Logger, cfg Config, deps Deps) *Service {
	if cfg.MaxDuplicates <= 0 {
		cfg.MaxDuplicates = DefaultMaxDuplicates
	}
	if cfg.MaxExamined <= 0 {
		cfg.MaxExamined = DefaultMaxExamined
	}
	if cfg.PerfectWanted <= 0 {
		cfg.PerfectWanted = DefaultPerfectWanted
	}
	return &Service{
		cfg:         cfg,
		lemmatizer:  deps.Lemmatizer,
		stopwords:   deps.Stopwords,
		known:       deps.Known,
		corpus:      deps.Corpus,
		provider:    deps.Provider,
		translator:  deps.Translator,
		cache:       deps.Cache,
		synthesizer: deps.Synthesizer,
		lookup:      deps.Lookup,
		reviewer:    deps.Reviewer,
		newAudioID:  newAudioID,
		log:         log.With("service", "finder"),
	}
}
