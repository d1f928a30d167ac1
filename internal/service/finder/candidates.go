package finder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// RetrievalStop tells which bound ended candidate retrieval.
type RetrievalStop string

const (
	StopDuplicates RetrievalStop = "duplicates"
	StopExamined   RetrievalStop = "examined"
	StopPerfect    RetrievalStop = "perfect"
	StopExhausted  RetrievalStop = "exhausted"
	StopError      RetrievalStop = "error"
)

// RetrievalStats describes one retrieval pass.
type RetrievalStats struct {
	Duplicates int
	Examined   int
	Perfect    int
	Stop       RetrievalStop
}

// FindCandidates pulls examples for word from the provider, drops
// duplicate sources (compared after tab and line-break cleanup), scores the rest and returns them ranked. Retrieval
// stops at the first bound reached (duplicates, examined or perfect
// candidates) without pulling another example. A provider error ends
// retrieval; the candidates gathered so far are kept.
func (s *Service) FindCandidates(ctx context.Context, word string) ([]domain.Candidate, RetrievalStats, error) {
	var stats RetrievalStats
	seen := make(map[string]struct{})
	var cands []domain.Candidate

	stats.Stop = StopExhausted
	for ex, err := range s.provider.Examples(ctx, word) {
		if err != nil {
			if ctx.Err() != nil {
				return nil, stats, ctx.Err()
			}
			s.log.WarnContext(ctx, "sentence provider failed, keeping partial candidates",
				slog.String("word", word),
				slog.Int("candidates", len(cands)),
				slog.String("error", err.Error()),
			)
			stats.Stop = StopError
			break
		}

		ex.Source = domain.SanitizeField(ex.Source)
		ex.Target = domain.SanitizeField(ex.Target)
		if _, dup := seen[ex.Source]; dup {
			stats.Duplicates++
			if stats.Duplicates >= s.cfg.MaxDuplicates {
				stats.Stop = StopDuplicates
				break
			}
			continue
		}
		seen[ex.Source] = struct{}{}
		stats.Examined++

		cand, err := s.Score(ctx, ex)
		if err != nil {
			return nil, stats, fmt.Errorf("score example: %w", err)
		}
		cands = append(cands, cand)

		if cand.Score <= s.cfg.PerfectScore {
			stats.Perfect++
			if stats.Perfect >= s.cfg.PerfectWanted {
				stats.Stop = StopPerfect
				break
			}
		}
		if stats.Examined >= s.cfg.MaxExamined {
			stats.Stop = StopExamined
			break
		}
	}

	Rank(cands)

	s.log.DebugContext(ctx, "candidates retrieved",
		slog.String("word", word),
		slog.Int("candidates", len(cands)),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("perfect", stats.Perfect),
		slog.String("stop", string(stats.Stop)),
	)
	return cands, stats, nil
}

// Score lemmatizes the example source and classifies every token.
// Tabs and line breaks in source and target are replaced with spaces.
func (s *Service) Score(ctx context.Context, ex domain.Example) (domain.Candidate, error) {
	cand := domain.Candidate{
		Source: domain.SanitizeField(ex.Source),
		Target: domain.SanitizeField(ex.Target),
	}

	tokens, err := s.lemmatizer.Lemmatize(ctx, cand.Source)
	if err != nil {
		return domain.Candidate{}, err
	}

	cand.Tokens = make([]domain.AnnotatedToken, 0, len(tokens))
	for _, tok := range tokens {
		c := s.classify(tok.Lemma)
		if c == domain.ClassificationUnknown {
			cand.Score++
		}
		cand.Tokens = append(cand.Tokens, domain.AnnotatedToken{Text: tok.Surface, Classification: c})
	}
	return cand, nil
}

func (s *Service) classify(lemma string) domain.Classification {
	lemma = domain.NormalizeWord(lemma)
	switch {
	case !domain.IsAlpha(lemma):
		return domain.ClassificationKnown
	case s.known.Has(lemma) || s.stopwords.Contains(lemma):
		return domain.ClassificationKnown
	case s.corpus.Has(lemma):
		return domain.ClassificationFuture
	default:
		return domain.ClassificationUnknown
	}
}

// Rank sorts candidates by score, then by sentence length. Equal keys keep
// retrieval order.
func Rank(cands []domain.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Less(cands[j]) })
}
