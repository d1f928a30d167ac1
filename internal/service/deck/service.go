package deck

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

const (
	DefaultRequestDelay = 660 * time.Millisecond
	DefaultNoteType     = "Generated Dutch Sentence"

	// DeckFileName is the Anki import file written to the output directory.
	DeckFileName = "out.deck.txt"
	// MediaDirName holds the audio files referenced by the notes.
	MediaDirName = "media"
)

type etymologyLookup interface {
	Lookup(ctx context.Context, term string) ([]domain.Etymology, error)
}

// Config holds deck generation settings.
type Config struct {
	// RequestDelay is waited before every dictionary lookup.
	RequestDelay time.Duration
	NoteType     string
}

// Service turns an output corpus into an Anki import file.
type Service struct {
	cfg    Config
	lookup etymologyLookup
	sleep  func(ctx context.Context, d time.Duration) error
	log    *slog.Logger
}

// NewService creates a new deck service. lookup may be nil, in which case
// every note gets an empty definition.
func NewService(log *slog.Logger, cfg Config, lookup etymologyLookup) *Service {
	if cfg.RequestDelay < 0 {
		cfg.RequestDelay = DefaultRequestDelay
	}
	if cfg.NoteType == "" {
		cfg.NoteType = DefaultNoteType
	}
	return &Service{
		cfg:    cfg,
		lookup: lookup,
		sleep:  ctxutil.Sleep,
		log:    log.With("service", "deck"),
	}
}
