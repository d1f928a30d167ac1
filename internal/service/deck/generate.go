package deck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

const progressEvery = 25

// Input describes one deck to generate.
type Input struct {
	Records []domain.OutputRecord
	// AudioDir is the directory the records' audio files live in.
	AudioDir  string
	DeckName  string
	OutputDir string
}

// Result summarizes a generated deck.
type Result struct {
	Path  string
	Notes int
	Media int
}

// Generate writes one note per record to the deck file and copies the
// referenced audio into the media directory. A dictionary lookup is made
// per record, each preceded by the configured delay.
func (s *Service) Generate(ctx context.Context, in Input) (*Result, error) {
	if strings.TrimSpace(in.DeckName) == "" {
		return nil, domain.NewValidationError("deck_name", "required")
	}

	mediaDir := filepath.Join(in.OutputDir, MediaDirName)
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	res := &Result{Path: filepath.Join(in.OutputDir, DeckFileName)}
	f, err := os.Create(res.Path)
	if err != nil {
		return nil, fmt.Errorf("create deck file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	s.writeHeader(w, in.DeckName)

	s.log.InfoContext(ctx, "generating deck",
		slog.String("deck", in.DeckName),
		slog.Int("records", len(in.Records)),
		slog.Duration("request_delay", s.cfg.RequestDelay),
	)

	for i, rec := range in.Records {
		if err := s.sleep(ctx, s.cfg.RequestDelay); err != nil {
			return res, err
		}

		definition, err := s.definition(ctx, rec.Word)
		if err != nil {
			return res, err
		}

		if rec.AudioFile != "" {
			if err := copyFile(filepath.Join(in.AudioDir, rec.AudioFile), filepath.Join(mediaDir, rec.AudioFile)); err != nil {
				return res, fmt.Errorf("copy audio for %q: %w", rec.Word, err)
			}
			res.Media++
		}

		writeNote(w, rec, definition)
		res.Notes++

		if (i+1)%progressEvery == 0 {
			s.log.InfoContext(ctx, "deck progress", slog.Int("notes", i+1), slog.Int("total", len(in.Records)))
		}
	}

	if err := w.Flush(); err != nil {
		return res, fmt.Errorf("write deck file: %w", err)
	}
	if err := f.Close(); err != nil {
		return res, fmt.Errorf("close deck file: %w", err)
	}

	s.log.InfoContext(ctx, "deck generated",
		slog.String("path", res.Path),
		slog.Int("notes", res.Notes),
		slog.Int("media", res.Media),
	)
	return res, nil
}

func (s *Service) definition(ctx context.Context, word string) (string, error) {
	if s.lookup == nil {
		return "", nil
	}
	etys, err := s.lookup.Lookup(ctx, word)
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", word, err)
	}
	return DefinitionHTML(etys), nil
}

func (s *Service) writeHeader(w io.Writer, deckName string) {
	fmt.Fprintln(w, "#separator:tab")
	fmt.Fprintln(w, "#html:true")
	fmt.Fprintf(w, "#notetype:%s\n", domain.SanitizeField(s.cfg.NoteType))
	fmt.Fprintf(w, "#deck:%s\n", domain.SanitizeField(deckName))
	fmt.Fprintln(w, "#columns:Sentence\tSentence Translation\tWord\tWord Definition\tSentence Audio")
}

func writeNote(w io.Writer, rec domain.OutputRecord, definition string) {
	sound := ""
	if rec.AudioFile != "" {
		sound = "[sound:" + rec.AudioFile + "]"
	}
	fields := []string{rec.Sentence, rec.Translation, rec.Word, definition, sound}
	for i := range fields {
		fields[i] = domain.SanitizeField(fields[i])
	}
	fmt.Fprintln(w, strings.Join(fields, "\t"))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
