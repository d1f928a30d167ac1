package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// StopReason tells why a triage session ended.
type StopReason string

const (
	StopCoverage  StopReason = "coverage"
	StopFrequency StopReason = "frequency"
	StopExhausted StopReason = "exhausted"
	StopAborted   StopReason = "aborted"
)

// TriageView is what the user sees for one word.
type TriageView struct {
	// Index is the 1-based rank of the word.
	Index     int
	Word      string
	Frequency int
	Known     int
	Unknown   int
	Found     int
}

// TriageResult summarizes a triage session.
type TriageResult struct {
	Presented     int
	MarkedKnown   int
	MarkedUnknown int
	Skipped       int
	Reason        StopReason
}

// Triage walks the ranking and prompts for each word until the coverage
// cutoff or the frequency floor is reached, or the user aborts. Words
// already marked unknown are not prompted but still count toward coverage.
// Each decision is persisted before the next word is shown.
func (s *Service) Triage(ctx context.Context, a *Analysis) (*TriageResult, error) {
	res := &TriageResult{Reason: StopExhausted}
	covered := 0

	for i, wc := range a.Counts {
		if a.Total > 0 && float64(covered)/float64(a.Total) > s.cfg.CoverageCutoff {
			res.Reason = StopCoverage
			break
		}
		if wc.Frequency <= s.cfg.FrequencyFloor {
			res.Reason = StopFrequency
			break
		}
		covered += wc.Frequency

		if s.unknown.Has(wc.Word) {
			res.Skipped++
			continue
		}

		action, err := s.prompter.PromptTriage(ctx, TriageView{
			Index:     i + 1,
			Word:      wc.Word,
			Frequency: wc.Frequency,
			Known:     s.known.Len(),
			Unknown:   s.unknown.Len(),
			Found:     len(a.Counts),
		})
		if err != nil {
			return res, fmt.Errorf("prompt: %w", err)
		}
		res.Presented++

		if !action.IsValid() {
			return res, fmt.Errorf("triage action %q: %w", action, domain.ErrValidation)
		}
		switch action {
		case domain.TriageActionKnown:
			if err := s.known.AddKnownWord(wc.Word); err != nil {
				return res, fmt.Errorf("mark known %q: %w", wc.Word, err)
			}
			res.MarkedKnown++
		case domain.TriageActionUnknown:
			if err := s.unknown.AddUnknownWord(wc.Word, wc.Frequency); err != nil {
				return res, fmt.Errorf("mark unknown %q: %w", wc.Word, err)
			}
			res.MarkedUnknown++
		case domain.TriageActionAbort:
			res.Reason = StopAborted
		}
		if res.Reason == StopAborted {
			break
		}
	}

	s.log.InfoContext(ctx, "triage finished",
		slog.String("reason", string(res.Reason)),
		slog.Int("presented", res.Presented),
		slog.Int("known", res.MarkedKnown),
		slog.Int("unknown", res.MarkedUnknown),
		slog.Int("covered", covered),
		slog.Int("total", a.Total),
	)
	return res, nil
}

// Run analyzes the corpus at path and starts the triage session.
func (s *Service) Run(ctx context.Context, path string) (*TriageResult, error) {
	a, err := s.AnalyzeFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.Triage(ctx, a)
}
