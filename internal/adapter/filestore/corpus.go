package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// CorpusFileName is the name of the sentence corpus inside an output directory.
const CorpusFileName = "sentences.tsv"

// PrepareOutputDir creates dir. An existing dir is refused with
// domain.ErrOutputExists unless resume is set.
func PrepareOutputDir(dir string, resume bool) error {
	_, err := os.Stat(dir)
	switch {
	case err == nil:
		if !resume {
			return fmt.Errorf("filestore: %s: %w", dir, domain.ErrOutputExists)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("filestore: create %s: %w", dir, err)
		}
		return nil
	default:
		return fmt.Errorf("filestore: stat %s: %w", dir, err)
	}
}

// LoadCorpus reads the sentence corpus of an output directory.
// A missing corpus file yields an empty corpus.
func LoadCorpus(dir string) (*domain.SentenceCorpus, error) {
	path := filepath.Join(dir, CorpusFileName)
	corpus := domain.NewSentenceCorpus()
	err := scanLines(path, func(n int, line string) error {
		if line == "" {
			return nil
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return domain.NewParseError(path, n, fmt.Sprintf("expected 4 fields, got %d", len(fields)))
		}
		corpus.Register(domain.OutputRecord{
			Word:        fields[0],
			Sentence:    fields[1],
			Translation: fields[2],
			AudioFile:   fields[3],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return corpus, nil
}

// CorpusStore appends accepted sentences and their audio to an output directory.
type CorpusStore struct {
	dir    string
	corpus *domain.SentenceCorpus
}

// OpenCorpus loads the corpus of dir, which must already exist.
func OpenCorpus(dir string) (*CorpusStore, error) {
	corpus, err := LoadCorpus(dir)
	if err != nil {
		return nil, fmt.Errorf("filestore: load corpus: %w", err)
	}
	return &CorpusStore{dir: dir, corpus: corpus}, nil
}

// Dir returns the output directory.
func (s *CorpusStore) Dir() string { return s.dir }

// Corpus returns the in-memory corpus.
func (s *CorpusStore) Corpus() *domain.SentenceCorpus { return s.corpus }

// Append writes rec as one TSV line and registers it in the corpus.
func (s *CorpusStore) Append(rec domain.OutputRecord) error {
	rec = domain.OutputRecord{
		Word:        domain.SanitizeField(rec.Word),
		Sentence:    domain.SanitizeField(rec.Sentence),
		Translation: domain.SanitizeField(rec.Translation),
		AudioFile:   domain.SanitizeField(rec.AudioFile),
	}
	line := strings.Join([]string{rec.Word, rec.Sentence, rec.Translation, rec.AudioFile}, "\t") + "\n"
	if err := appendLine(filepath.Join(s.dir, CorpusFileName), line); err != nil {
		return fmt.Errorf("filestore: append record: %w", err)
	}
	s.corpus.Register(rec)
	return nil
}

// WriteAudio stores an audio file under name in the output directory.
func (s *CorpusStore) WriteAudio(name string, data []byte) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("filestore: audio name %q: %w", name, domain.ErrValidation)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("filestore: write audio: %w", err)
	}
	return nil
}

// Has reports whether a sentence was already accepted for word.
func (s *CorpusStore) Has(word string) bool { return s.corpus.Has(word) }

// Len returns the number of words with an accepted sentence.
func (s *CorpusStore) Len() int { return s.corpus.Len() }
