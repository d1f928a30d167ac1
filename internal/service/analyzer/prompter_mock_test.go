package analyzer

import (
	"context"
	"sync"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

var _ prompter = &prompterMock{}

type prompterMock struct {
	PromptTriageFunc func(ctx context.Context, view TriageView) (domain.TriageAction, error)

	calls struct {
		PromptTriage []struct {
			Ctx  context.Context
			View TriageView
		}
	}
	lockPromptTriage sync.RWMutex
}

func (mock *prompterMock) PromptTriage(ctx context.Context, view TriageView) (domain.TriageAction, error) {
	if mock.PromptTriageFunc == nil {
		panic("prompterMock.PromptTriageFunc: method is nil but prompter.PromptTriage was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		View TriageView
	}{Ctx: ctx, View: view}
	mock.lockPromptTriage.Lock()
	mock.calls.PromptTriage = append(mock.calls.PromptTriage, callInfo)
	mock.lockPromptTriage.Unlock()
	return mock.PromptTriageFunc(ctx, view)
}

func (mock *prompterMock) PromptTriageCalls() []struct {
	Ctx  context.Context
	View TriageView
} {
	mock.lockPromptTriage.RLock()
	calls := mock.calls.PromptTriage
	mock.lockPromptTriage.RUnlock()
	return calls
}
