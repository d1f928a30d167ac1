package finder

import (
	"context"
	"iter"
	"sync"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

var _ corpusStore = &corpusStoreMock{}

type corpusStoreMock struct {
	HasFunc        func(word string) bool
	LenFunc        func() int
	AppendFunc     func(rec domain.OutputRecord) error
	WriteAudioFunc func(name string, data []byte) error

	calls struct {
		Has []struct {
			Word string
		}
		Len []struct{}
		Append []struct {
			Rec domain.OutputRecord
		}
		WriteAudio []struct {
			Name string
			Data []byte
		}
	}
	lockHas        sync.RWMutex
	lockLen        sync.RWMutex
	lockAppend     sync.RWMutex
	lockWriteAudio sync.RWMutex
}

func (mock *corpusStoreMock) Has(word string) bool {
	if mock.HasFunc == nil {
		panic("corpusStoreMock.HasFunc: method is nil but corpusStore.Has was just called")
	}
	callInfo := struct {
		Word string
	}{Word: word}
	mock.lockHas.Lock()
	mock.calls.Has = append(mock.calls.Has, callInfo)
	mock.lockHas.Unlock()
	return mock.HasFunc(word)
}

func (mock *corpusStoreMock) HasCalls() []struct {
	Word string
} {
	mock.lockHas.RLock()
	calls := mock.calls.Has
	mock.lockHas.RUnlock()
	return calls
}

func (mock *corpusStoreMock) Len() int {
	if mock.LenFunc == nil {
		panic("corpusStoreMock.LenFunc: method is nil but corpusStore.Len was just called")
	}
	callInfo := struct{}{}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, callInfo)
	mock.lockLen.Unlock()
	return mock.LenFunc()
}

func (mock *corpusStoreMock) LenCalls() []struct{} {
	mock.lockLen.RLock()
	calls := mock.calls.Len
	mock.lockLen.RUnlock()
	return calls
}

func (mock *corpusStoreMock) Append(rec domain.OutputRecord) error {
	if mock.AppendFunc == nil {
		panic("corpusStoreMock.AppendFunc: method is nil but corpusStore.Append was just called")
	}
	callInfo := struct {
		Rec domain.OutputRecord
	}{Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(rec)
}

func (mock *corpusStoreMock) AppendCalls() []struct {
	Rec domain.OutputRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *corpusStoreMock) WriteAudio(name string, data []byte) error {
	if mock.WriteAudioFunc == nil {
		panic("corpusStoreMock.WriteAudioFunc: method is nil but corpusStore.WriteAudio was just called")
	}
	callInfo := struct {
		Name string
		Data []byte
	}{Name: name, Data: data}
	mock.lockWriteAudio.Lock()
	mock.calls.WriteAudio = append(mock.calls.WriteAudio, callInfo)
	mock.lockWriteAudio.Unlock()
	return mock.WriteAudioFunc(name, data)
}

func (mock *corpusStoreMock) WriteAudioCalls() []struct {
	Name string
	Data []byte
} {
	mock.lockWriteAudio.RLock()
	calls := mock.calls.WriteAudio
	mock.lockWriteAudio.RUnlock()
	return calls
}

var _ knownStore = &knownStoreMock{}

type knownStoreMock struct {
	HasFunc          func(word string) bool
	LenFunc          func() int
	AddKnownWordFunc func(word string) error

	calls struct {
		Has []struct {
			Word string
		}
		Len []struct{}
		AddKnownWord []struct {
			Word string
		}
	}
	lockHas          sync.RWMutex
	lockLen          sync.RWMutex
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

func (mock *knownStoreMock) Len() int {
	if mock.LenFunc == nil {
		panic("knownStoreMock.LenFunc: method is nil but knownStore.Len was just called")
	}
	callInfo := struct{}{}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, callInfo)
	mock.lockLen.Unlock()
	return mock.LenFunc()
}

func (mock *knownStoreMock) LenCalls() []struct{} {
	mock.lockLen.RLock()
	calls := mock.calls.Len
	mock.lockLen.RUnlock()
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

var _ sentenceProvider = &sentenceProviderMock{}

type sentenceProviderMock struct {
	ExamplesFunc func(ctx context.Context, word string) iter.Seq2[domain.Example, error]

	calls struct {
		Examples []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockExamples sync.RWMutex
}

func (mock *sentenceProviderMock) Examples(ctx context.Context, word string) iter.Seq2[domain.Example, error] {
	if mock.ExamplesFunc == nil {
		panic("sentenceProviderMock.ExamplesFunc: method is nil but sentenceProvider.Examples was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockExamples.Lock()
	mock.calls.Examples = append(mock.calls.Examples, callInfo)
	mock.lockExamples.Unlock()
	return mock.ExamplesFunc(ctx, word)
}

func (mock *sentenceProviderMock) ExamplesCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockExamples.RLock()
	calls := mock.calls.Examples
	mock.lockExamples.RUnlock()
	return calls
}

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
