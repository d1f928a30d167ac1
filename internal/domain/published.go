package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublishedSentence is an OutputRecord stored in the corpus database.
type PublishedSentence struct {
	ID          uuid.UUID
	Word        string
	Sentence    string
	Translation string
	AudioFile   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Record returns the sentence as an OutputRecord.
func (p PublishedSentence) Record() OutputRecord {
	return OutputRecord{
		Word:        p.Word,
		Sentence:    p.Sentence,
		Translation: p.Translation,
		AudioFile:   p.AudioFile,
	}
}
