package finder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// ReviewView is everything shown to the user for one candidate.
type ReviewView struct {
	Known     int
	Unknown   int
	Generated int

	Word      string
	WordIndex int // 1-based
	WordTotal int

	Candidate         domain.Candidate
	Translation       string
	TranslationSource string
	Position          int // 1-based
	Total             int

	Etymologies []domain.Etymology
	// Notice is a one-line message about the previous action, if any.
	Notice string
}

type reviewState int

const (
	statePresenting reviewState = iota
	stateAwaitingAction
	stateWordDone
	stateSessionEnded
)

type wordOutcome int

const (
	outcomeAccepted wordOutcome = iota
	outcomeKnown
	outcomeAborted
)

// wordReview is the browsing state for one word's candidates.
type wordReview struct {
	word        string
	wordIndex   int
	wordTotal   int
	cands       []domain.Candidate
	etymologies []domain.Etymology

	cursor      int
	showService bool
	notice      string
	outcome     wordOutcome
}

// reviewWord runs the browsing loop for one word until the user accepts a
// sentence, marks the word known, or aborts the session.
func (s *Service) reviewWord(ctx context.Context, w *wordReview) (wordOutcome, error) {
	state := statePresenting
	var action domain.ReviewAction

	for {
		switch state {
		case statePresenting:
			view, err := s.view(ctx, w)
			if err != nil {
				return outcomeAborted, err
			}
			w.notice = ""
			action, err = s.reviewer.Review(ctx, view)
			if err != nil {
				return outcomeAborted, fmt.Errorf("review prompt: %w", err)
			}
			if !action.IsValid() {
				return outcomeAborted, fmt.Errorf("review action %q: %w", action, domain.ErrValidation)
			}
			state = stateAwaitingAction

		case stateAwaitingAction:
			next, err := s.apply(ctx, w, action)
			if err != nil {
				return outcomeAborted, err
			}
			state = next

		case stateWordDone:
			return w.outcome, nil

		case stateSessionEnded:
			return outcomeAborted, nil
		}
	}
}

// apply performs one action and returns the next state.
func (s *Service) apply(ctx context.Context, w *wordReview, action domain.ReviewAction) (reviewState, error) {
	n := len(w.cands)

	switch action {
	case domain.ReviewActionNext:
		w.cursor = (w.cursor + 1) % n
		w.showService = false
		return statePresenting, nil

	case domain.ReviewActionPrevious:
		w.cursor = (w.cursor - 1 + n) % n
		w.showService = false
		return statePresenting, nil

	case domain.ReviewActionToggleTranslation:
		w.showService = !w.showService
		return statePresenting, nil

	case domain.ReviewActionAccept:
		if err := s.accept(ctx, w); err != nil {
			return stateSessionEnded, err
		}
		w.outcome = outcomeAccepted
		return stateWordDone, nil

	case domain.ReviewActionMarkKnown:
		if err := s.known.AddKnownWord(w.word); err != nil {
			return stateSessionEnded, fmt.Errorf("mark known %q: %w", w.word, err)
		}
		w.outcome = outcomeKnown
		return stateWordDone, nil

	case domain.ReviewActionAbort:
		return stateSessionEnded, nil
	}

	return stateSessionEnded, fmt.Errorf("review action %q: %w", action, domain.ErrValidation)
}

// accept synthesizes the current sentence and appends it to the corpus
// with the translation currently shown.
func (s *Service) accept(ctx context.Context, w *wordReview) error {
	cand := w.cands[w.cursor]
	translation, _ := s.currentTranslation(ctx, w)

	audio, err := s.synthesizer.Synthesize(ctx, cand.Source)
	if err != nil {
		return fmt.Errorf("synthesize %q: %w", w.word, err)
	}

	name := s.newAudioID() + ".mp3"
	if err := s.corpus.WriteAudio(name, audio); err != nil {
		return err
	}

	rec := domain.OutputRecord{
		Word:        w.word,
		Sentence:    cand.Source,
		Translation: translation,
		AudioFile:   name,
	}
	if err := s.corpus.Append(rec); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sentence accepted",
		slog.String("word", w.word),
		slog.String("audio", name),
		slog.Int("score", cand.Score),
	)
	return nil
}

// currentTranslation returns the translation to show and its label. When
// the translation service fails the provider translation is kept and a
// notice is set.
func (s *Service) currentTranslation(ctx context.Context, w *wordReview) (string, string) {
	cand := w.cands[w.cursor]
	if !w.showService {
		return cand.Target, s.cfg.ProviderLabel
	}

	translated, err := s.translate(ctx, cand.Source)
	if err != nil {
		s.log.WarnContext(ctx, "translation failed", slog.String("word", w.word), slog.String("error", err.Error()))
		w.showService = false
		w.notice = "translation unavailable: " + err.Error()
		return cand.Target, s.cfg.ProviderLabel
	}
	return translated, s.cfg.TranslatorLabel
}

// translate consults the cache before calling the translation service and
// stores new results.
func (s *Service) translate(ctx context.Context, sentence string) (string, error) {
	if t, ok := s.cache.Get(sentence); ok {
		return t, nil
	}
	t, err := s.translator.Translate(ctx, sentence)
	if err != nil {
		return "", err
	}
	if err := s.cache.Put(sentence, t); err != nil {
		s.log.WarnContext(ctx, "translation cache write failed", slog.String("error", err.Error()))
	}
	return t, nil
}

func (s *Service) view(ctx context.Context, w *wordReview) (ReviewView, error) {
	if err := ctx.Err(); err != nil {
		return ReviewView{}, err
	}
	translation, label := s.currentTranslation(ctx, w)
	return ReviewView{
		Known:             s.known.Len(),
		Unknown:           w.wordTotal,
		Generated:         s.corpus.Len(),
		Word:              w.word,
		WordIndex:         w.wordIndex,
		WordTotal:         w.wordTotal,
		Candidate:         w.cands[w.cursor],
		Translation:       translation,
		TranslationSource: label,
		Position:          w.cursor + 1,
		Total:             len(w.cands),
		Etymologies:       w.etymologies,
		Notice:            w.notice,
	}, nil
}

func newAudioID() string { return uuid.NewString() }
