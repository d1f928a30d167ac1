package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

const DefaultBatchSize = 500

type sentenceRepo interface {
	BulkUpsert(ctx context.Context, records []domain.OutputRecord) (int, error)
}

// Service copies an output corpus into the corpus database.
type Service struct {
	repo      sentenceRepo
	batchSize int
	log       *slog.Logger
}

// NewService creates a new publish service. A batchSize <= 0 uses the default.
func NewService(log *slog.Logger, repo sentenceRepo, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{
		repo:      repo,
		batchSize: batchSize,
		log:       log.With("service", "publish"),
	}
}

// Result summarizes a publication.
type Result struct {
	Records int
	Batches int
	// Changed counts rows inserted or updated.
	Changed int
}

// Publish upserts records in batches. Records with an empty word or
// sentence are rejected before anything is written. A later record for the
// same word replaces an earlier one.
func (s *Service) Publish(ctx context.Context, records []domain.OutputRecord) (*Result, error) {
	records, err := dedupe(records)
	if err != nil {
		return nil, err
	}

	res := &Result{Records: len(records)}
	for start := 0; start < len(records); start += s.batchSize {
		end := min(start+s.batchSize, len(records))

		n, err := s.repo.BulkUpsert(ctx, records[start:end])
		if err != nil {
			return res, fmt.Errorf("publish batch %d: %w", res.Batches+1, err)
		}
		res.Batches++
		res.Changed += n

		s.log.DebugContext(ctx, "batch published",
			slog.Int("batch", res.Batches),
			slog.Int("size", end-start),
			slog.Int("changed", n),
		)
	}

	s.log.InfoContext(ctx, "corpus published",
		slog.Int("records", res.Records),
		slog.Int("batches", res.Batches),
		slog.Int("changed", res.Changed),
	)
	return res, nil
}

// dedupe validates records and keeps the last record per word at the
// position of its first occurrence.
func dedupe(records []domain.OutputRecord) ([]domain.OutputRecord, error) {
	var errs []domain.FieldError
	index := make(map[string]int, len(records))
	out := make([]domain.OutputRecord, 0, len(records))

	for i, rec := range records {
		switch {
		case rec.Word == "":
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("records[%d].word", i), Message: "required"})
			continue
		case rec.Sentence == "":
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("records[%d].sentence", i), Message: "required"})
			continue
		}
		if j, ok := index[rec.Word]; ok {
			out[j] = rec
			continue
		}
		index[rec.Word] = len(out)
		out = append(out, rec)
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}
