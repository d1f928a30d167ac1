package sentence

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/nlvocab/internal/adapter/postgres"
	"github.com/heartmarshall/nlvocab/internal/domain"
)

const (
	entity = "corpus_sentence"
	table  = "corpus_sentences"
)

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "word", "sentence", "translation", "audio_file", "created_at", "updated_at"}
)

const upsertSQL = `INSERT INTO corpus_sentences (id, word, sentence, translation, audio_file)
	 VALUES ($1, $2, $3, $4, $5)
	 ON CONFLICT (word) DO UPDATE
	 SET sentence = EXCLUDED.sentence,
	     translation = EXCLUDED.translation,
	     audio_file = EXCLUDED.audio_file,
	     updated_at = now()
	 WHERE (corpus_sentences.sentence, corpus_sentences.translation, corpus_sentences.audio_file)
	       IS DISTINCT FROM (EXCLUDED.sentence, EXCLUDED.translation, EXCLUDED.audio_file)`

// Repo stores published corpus sentences.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new sentence repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// BulkUpsert writes records keyed by word in one transaction. Unchanged
// rows are left alone. It returns the number of rows inserted or changed.
func (r *Repo) BulkUpsert(ctx context.Context, records []domain.OutputRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(upsertSQL, uuid.New(), rec.Word, rec.Sentence, rec.Translation, rec.AudioFile)
	}

	var affected int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
		defer results.Close()

		for i := range batch.Len() {
			tag, err := results.Exec()
			if err != nil {
				return postgres.MapError(err, entity, records[i].Word)
			}
			affected += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// GetByWord returns the published sentence for word.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.PublishedSentence, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"word": word}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	s, err := scanSentence(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, word)
	}
	return s, nil
}

// List returns sentences ordered by word.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.PublishedSentence, error) {
	f.normalize()

	query, args, err := where(psql.Select(columns...).From(table), f).
		OrderBy("word ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	defer rows.Close()

	var out []domain.PublishedSentence
	for rows.Next() {
		s, err := scanSentence(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, "list")
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}
	return out, nil
}

// Count returns the number of sentences matching the filter; pagination is
// ignored.
func (r *Repo) Count(ctx context.Context, f Filter) (int, error) {
	query, args, err := where(psql.Select("count(*)").From(table), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, "count")
	}
	return n, nil
}

func where(b sq.SelectBuilder, f Filter) sq.SelectBuilder {
	if f.WordPrefix != "" {
		b = b.Where(sq.Like{"word": likePrefix(f.WordPrefix)})
	}
	return b
}

func scanSentence(row pgx.Row) (*domain.PublishedSentence, error) {
	var s domain.PublishedSentence
	if err := row.Scan(&s.ID, &s.Word, &s.Sentence, &s.Translation, &s.AudioFile, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
