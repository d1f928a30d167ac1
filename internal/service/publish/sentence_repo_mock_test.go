package publish

import (
	"context"
	"sync"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

var _ sentenceRepo = &sentenceRepoMock{}

type sentenceRepoMock struct {
	BulkUpsertFunc func(ctx context.Context, records []domain.OutputRecord) (int, error)

	calls struct {
		BulkUpsert []struct {
			Ctx     context.Context
			Records []domain.OutputRecord
		}
	}
	lockBulkUpsert sync.RWMutex
}

func (mock *sentenceRepoMock) BulkUpsert(ctx context.Context, records []domain.OutputRecord) (int, error) {
	if mock.BulkUpsertFunc == nil {
		panic("sentenceRepoMock.BulkUpsertFunc: method is nil but sentenceRepo.BulkUpsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Records []domain.OutputRecord
	}{Ctx: ctx, Records: records}
	mock.lockBulkUpsert.Lock()
	mock.calls.BulkUpsert = append(mock.calls.BulkUpsert, callInfo)
	mock.lockBulkUpsert.Unlock()
	return mock.BulkUpsertFunc(ctx, records)
}

func (mock *sentenceRepoMock) BulkUpsertCalls() []struct {
	Ctx     context.Context
	Records []domain.OutputRecord
} {
	mock.lockBulkUpsert.RLock()
	calls := mock.calls.BulkUpsert
	mock.lockBulkUpsert.RUnlock()
	return calls
}
