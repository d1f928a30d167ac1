package analyzer

import (
	"sync"
)

var (
	_ knownStore   = &knownStoreMock{}
	_ unknownStore = &unknownStoreMock{}
)

type knownStoreMock struct {
	HasFunc          func(word string) bool
	LenFunc          func() int
	AddKnownWordFunc func(word string) error

	calls struct {
		Has          []struct{ Word string }
		Len          []struct{}
		AddKnownWord []struct{ Word string }
	}
	lockHas          sync.RWMutex
	lockLen          sync.RWMutex
	lockAddKnownWord sync.RWMutex
}

func (mock *knownStoreMock) Has(word string) bool {
	if mock.HasFunc == nil {
		panic("knownStoreMock.HasFunc: method is nil but knownStore.Has was just called")
	}
	mock.lockHas.Lock()
	mock.calls.Has = append(mock.calls.Has, struct{ Word string }{Word: word})
	mock.lockHas.Unlock()
	return mock.HasFunc(word)
}

func (mock *knownStoreMock) HasCalls() []struct{ Word string } {
	mock.lockHas.RLock()
	calls := mock.calls.Has
	mock.lockHas.RUnlock()
	return calls
}

func (mock *knownStoreMock) Len() int {
	if mock.LenFunc == nil {
		panic("knownStoreMock.LenFunc: method is nil but knownStore.Len was just called")
	}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, struct{}{})
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
	mock.lockAddKnownWord.Lock()
	mock.calls.AddKnownWord = append(mock.calls.AddKnownWord, struct{ Word string }{Word: word})
	mock.lockAddKnownWord.Unlock()
	return mock.AddKnownWordFunc(word)
}

func (mock *knownStoreMock) AddKnownWordCalls() []struct{ Word string } {
	mock.lockAddKnownWord.RLock()
	calls := mock.calls.AddKnownWord
	mock.lockAddKnownWord.RUnlock()
	return calls
}

type unknownStoreMock struct {
	HasFunc            func(word string) bool
	LenFunc            func() int
	AddUnknownWordFunc func(word string, frequency int) error

	calls struct {
		Has            []struct{ Word string }
		Len            []struct{}
		AddUnknownWord []struct {
			Word      string
			Frequency int
		}
	}
	lockHas            sync.RWMutex
	lockLen            sync.RWMutex
	lockAddUnknownWord sync.RWMutex
}

func (mock *unknownStoreMock) Has(word string) bool {
	if mock.HasFunc == nil {
		panic("unknownStoreMock.HasFunc: method is nil but unknownStore.Has was just called")
	}
	mock.lockHas.Lock()
	mock.calls.Has = append(mock.calls.Has, struct{ Word string }{Word: word})
	mock.lockHas.Unlock()
	return mock.HasFunc(word)
}

func (mock *unknownStoreMock) HasCalls() []struct{ Word string } {
	mock.lockHas.RLock()
	calls := mock.calls.Has
	mock.lockHas.RUnlock()
	return calls
}

func (mock *unknownStoreMock) Len() int {
	if mock.LenFunc == nil {
		panic("unknownStoreMock.LenFunc: method is nil but unknownStore.Len was just called")
	}
	mock.lockLen.Lock()
	mock.calls.Len = append(mock.calls.Len, struct{}{})
	mock.lockLen.Unlock()
	return mock.LenFunc()
}

func (mock *unknownStoreMock) LenCalls() []struct{} {
	mock.lockLen.RLock()
	calls := mock.calls.Len
	mock.lockLen.RUnlock()
	return calls
}

func (mock *unknownStoreMock) AddUnknownWord(word string, frequency int) error {
	if mock.AddUnknownWordFunc == nil {
		panic("unknownStoreMock.AddUnknownWordFunc: method is nil but unknownStore.AddUnknownWord was just called")
	}
	callInfo := struct {
		Word      string
		Frequency int
	}{Word: word, Frequency: frequency}
	mock.lockAddUnknownWord.Lock()
	mock.calls.AddUnknownWord = append(mock.calls.AddUnknownWord, callInfo)
	mock.lockAddUnknownWord.Unlock()
	return mock.AddUnknownWordFunc(word, frequency)
}

func (mock *unknownStoreMock) AddUnknownWordCalls() []struct {
	Word      string
	Frequency int
} {
	mock.lockAddUnknownWord.RLock()
	calls := mock.calls.AddUnknownWord
	mock.lockAddUnknownWord.RUnlock()
	return calls
}
