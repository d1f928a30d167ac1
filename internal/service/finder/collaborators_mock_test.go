package finder

import (
	"context"
	"sync"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, sentence string) (string, error)

	calls struct {
		Translate []struct {
			Ctx      context.Context
			Sentence string
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, sentence string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Sentence string
	}{Ctx: ctx, Sentence: sentence}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, sentence)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Ctx      context.Context
	Sentence string
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}

var _ translationCache = &translationCacheMock{}

type translationCacheMock struct {
	GetFunc func(sentence string) (string, bool)
	PutFunc func(sentence string, translation string) error

	calls struct {
		Get []struct {
			Sentence string
		}
		Put []struct {
			Sentence    string
			Translation string
		}
	}
	lockGet sync.RWMutex
	lockPut sync.RWMutex
}

func (mock *translationCacheMock) Get(sentence string) (string, bool) {
	if mock.GetFunc == nil {
		panic("translationCacheMock.GetFunc: method is nil but translationCache.Get was just called")
	}
	callInfo := struct {
		Sentence string
	}{Sentence: sentence}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(sentence)
}

func (mock *translationCacheMock) GetCalls() []struct {
	Sentence string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *translationCacheMock) Put(sentence string, translation string) error {
	if mock.PutFunc == nil {
		panic("translationCacheMock.PutFunc: method is nil but translationCache.Put was just called")
	}
	callInfo := struct {
		Sentence    string
		Translation string
	}{Sentence: sentence, Translation: translation}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(sentence, translation)
}

func (mock *translationCacheMock) PutCalls() []struct {
	Sentence    string
	Translation string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

var _ synthesizer = &synthesizerMock{}

type synthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text string) ([]byte, error)

	calls struct {
		Synthesize []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *synthesizerMock) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("synthesizerMock.SynthesizeFunc: method is nil but synthesizer.Synthesize was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text)
}

func (mock *synthesizerMock) SynthesizeCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockSynthesize.RLock()
	calls := mock.calls.Synthesize
	mock.lockSynthesize.RUnlock()
	return calls
}

var _ etymologyLookup = &etymologyLookupMock{}

type etymologyLookupMock struct {
	LookupFunc func(ctx context.Context, term string) ([]domain.Etymology, error)

	calls struct {
		Lookup []struct {
			Ctx  context.Context
			Term string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *etymologyLookupMock) Lookup(ctx context.Context, term string) ([]domain.Etymology, error) {
	if mock.LookupFunc == nil {
		panic("etymologyLookupMock.LookupFunc: method is nil but etymologyLookup.Lookup was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, term)
}

func (mock *etymologyLookupMock) LookupCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}

var _ reviewer = &reviewerMock{}

type reviewerMock struct {
	ReviewFunc func(ctx context.Context, view ReviewView) (domain.ReviewAction, error)

	calls struct {
		Review []struct {
			Ctx  context.Context
			View ReviewView
		}
	}
	lockReview sync.RWMutex
}

func (mock *reviewerMock) Review(ctx context.Context, view ReviewView) (domain.ReviewAction, error) {
	if mock.ReviewFunc == nil {
		panic("reviewerMock.ReviewFunc: method is nil but reviewer.Review was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		View ReviewView
	}{Ctx: ctx, View: view}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, view)
}

func (mock *reviewerMock) ReviewCalls() []struct {
	Ctx  context.Context
	View ReviewView
} {
	mock.lockReview.RLock()
	calls := mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}
