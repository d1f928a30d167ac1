package analyzer

import (
	"context"
	"sync"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

var _ lemmatizer = &lemmatizerMock{}

type lemmatizerMock struct {
	LemmatizeFunc func(ctx context.Context, text string) ([]domain.Token, error)

	calls struct {
		Lemmatize []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockLemmatize sync.RWMutex
}

func (mock *lemmatizerMock) Lemmatize(ctx context.Context, text string) ([]domain.Token, error) {
	if mock.LemmatizeFunc == nil {
		panic("lemmatizerMock.LemmatizeFunc: method is nil but lemmatizer.Lemmatize was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockLemmatize.Lock()
	mock.calls.Lemmatize = append(mock.calls.Lemmatize, callInfo)
	mock.lockLemmatize.Unlock()
	return mock.LemmatizeFunc(ctx, text)
}

func (mock *lemmatizerMock) LemmatizeCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockLemmatize.RLock()
	calls := mock.calls.Lemmatize
	mock.lockLemmatize.RUnlock()
	return calls
}
