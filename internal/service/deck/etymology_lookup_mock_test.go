package deck

import (
	"context"
	"sync"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

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
