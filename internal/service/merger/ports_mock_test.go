package merger

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

var _ knownStore = &knownStoreMock{}

type knownStoreMock struct {
	HasFunc          func(word string) bool
	AddKnownWordFunc func(word string) error

	calls struct {
		Has []struct {
			Word string
		}
		AddKnownWord []struct {
			Word string
		}
	}
	lockHas          sync.RWMutex
	lockAddKnownWord sync.RWMutex
}

func (mock *knownStoreMock) Has(word string) bool {
	if mock.HasFunc == nil {
		panic("knownStoreMock.HasFunc: method is nil but knownStore.Has was just called")
	}
	callInfo := struct {
		Word string
	}{Word: word}
	mock.lockHas.Lock()
	mock.calls.Has = append(mock.calls.Has, callInfo)
	mock.lockHas.Unlock()
	return mock.HasFunc(word)
}

func (mock *knownStoreMock) HasCalls() []struct {
	Word string
} {
	mock.lockHas.RLock()
	calls := mock.calls.Has
	mock.lockHas.RUnlock()
	return calls
}

func (mock *knownStoreMock) AddKnownWord(word string) error {
	if mock.AddKnownWordFunc == nil {
		panic("knownStoreMock.AddKnownWordFunc: method is nil but knownStore.AddKnownWord was just called")
	}
	callInfo := struct {
		Word string
	}{Word: word}
	mock.lockAddKnownWord.Lock()
	mock.calls.AddKnownWord = append(mock.calls.AddKnownWord, callInfo)
	mock.lockAddKnownWord.Unlock()
	return mock.AddKnownWordFunc(word)
}

func (mock *knownStoreMock) AddKnownWordCalls() []struct {
	Word string
} {
	mock.lockAddKnownWord.RLock()
	calls := mock.calls.AddKnownWord
	mock.lockAddKnownWord.RUnlock()
	return calls
}
