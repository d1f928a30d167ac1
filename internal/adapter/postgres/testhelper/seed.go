package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// UniqueWord returns a word that does not collide with other tests sharing
// the database.
func UniqueWord(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

// SeedSentence inserts one corpus sentence and returns the record.
func SeedSentence(t *testing.T, pool *pgxpool.Pool, word string) domain.OutputRecord {
	t.Helper()

	rec := domain.OutputRecord{
		Word:        word,
		Sentence:    "Het " + word + " is hier.",
		Translation: "The " + word + " is here.",
		AudioFile:   uuid.NewString() + ".mp3",
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO corpus_sentences (id, word, sentence, translation, audio_file)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), rec.Word, rec.Sentence, rec.Translation, rec.AudioFile,
	)
	if err != nil {
		t.Fatalf("testhelper: seed sentence %q: %v", word, err)
	}
	return rec
}
