package finder

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// RunResult summarizes a curation session.
type RunResult struct {
	Words               int
	Reviewed            int
	Accepted            int
	MarkedKnown         int
	SkippedExisting     int
	SkippedNoCandidates int
	Aborted             bool
}

// Run curates sentences for each word in order. Words that already have a
// sentence in the corpus, or are already known, are skipped before the
// provider is called. Words without candidates are skipped. The session
// ends after the last word or when the user aborts.
func (s *Service) Run(ctx context.Context, words []string) (*RunResult, error) {
	res := &RunResult{Words: len(words)}

	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if s.corpus.Has(word) || s.known.Has(word) {
			res.SkippedExisting++
			continue
		}

		cands, _, err := s.FindCandidates(ctx, word)
		if err != nil {
			return res, err
		}
		if len(cands) == 0 {
			s.log.InfoContext(ctx, "no candidates, skipping", slog.String("word", word))
			res.SkippedNoCandidates++
			continue
		}

		res.Reviewed++
		outcome, err := s.reviewWord(ctx, &wordReview{
			word:        word,
			wordIndex:   i + 1,
			wordTotal:   len(words),
			cands:       cands,
			etymologies: s.etymologies(ctx, word),
		})
		if err != nil {
			return res, err
		}

		switch outcome {
		case outcomeAccepted:
			res.Accepted++
		case outcomeKnown:
			res.MarkedKnown++
		case outcomeAborted:
			res.Aborted = true
			s.log.InfoContext(ctx, "session aborted", slog.String("word", word))
			return res, nil
		}
	}

	return res, nil
}

func (s *Service) etymologies(ctx context.Context, word string) []domain.Etymology {
	if s.lookup == nil {
		return nil
	}
	etys, err := s.lookup.Lookup(ctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "etymology lookup failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil
	}
	return etys
}
