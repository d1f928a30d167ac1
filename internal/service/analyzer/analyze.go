package analyzer

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// Analysis is the result of one corpus pass.
type Analysis struct {
	// Counts is ordered by frequency descending, ties by first occurrence.
	Counts []domain.WordCount
	// Total is the number of counted occurrences; it equals the sum of Counts.
	Total int
	Lines int
}

// AnalyzeFile counts the lines of the corpus at path for progress
// reporting, then analyzes it.
func (s *Service) AnalyzeFile(ctx context.Context, path string) (*Analysis, error) {
	lines, err := countLines(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	s.log.InfoContext(ctx, "analyzing corpus", slog.String("path", path), slog.Int("lines", lines))
	return s.analyze(ctx, f, lines)
}

// Analyze streams r line by line, lemmatizes each lowercased line and
// counts the allowed lemmas.
func (s *Service) Analyze(ctx context.Context, r io.Reader) (*Analysis, error) {
	return s.analyze(ctx, r, 0)
}

func (s *Service) analyze(ctx context.Context, r io.Reader, totalLines int) (*Analysis, error) {
	counts := make(map[string]int)
	var order []string
	a := &Analysis{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		a.Lines++

		tokens, err := s.lemmatizer.Lemmatize(ctx, domain.LowerText(scanner.Text()))
		if err != nil {
			return nil, fmt.Errorf("lemmatize line %d: %w", a.Lines, err)
		}

		for _, tok := range tokens {
			lemma := domain.NormalizeWord(tok.Lemma)
			if !s.isAllowed(lemma) {
				continue
			}
			if _, seen := counts[lemma]; !seen {
				order = append(order, lemma)
			}
			counts[lemma]++
			a.Total++
		}

		if a.Lines%progressEvery == 0 {
			s.log.DebugContext(ctx, "analyze progress",
				slog.Int("lines", a.Lines),
				slog.Int("total_lines", totalLines),
				slog.Int("words", len(order)),
			)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	a.Counts = make([]domain.WordCount, len(order))
	for i, w := range order {
		a.Counts[i] = domain.WordCount{Word: w, Frequency: counts[w]}
	}
	sort.SliceStable(a.Counts, func(i, j int) bool {
		return a.Counts[i].Frequency > a.Counts[j].Frequency
	})

	s.log.InfoContext(ctx, "corpus analyzed",
		slog.Int("lines", a.Lines),
		slog.Int("words", len(a.Counts)),
		slog.Int("occurrences", a.Total),
	)
	return a, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	lines, last := 0, byte('\n')
	for {
		n, err := f.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("count corpus lines: %w", err)
		}
	}
	if last != '\n' {
		lines++
	}
	return lines, nil
}
