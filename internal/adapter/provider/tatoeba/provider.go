// Package tatoeba serves example sentences from a local Tatoeba sentence
// pair export (TSV: source id, source text, target id, target text).
package tatoeba

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/adapter/nlp/lexicon"
	"github.com/heartmarshall/nlvocab/internal/domain"
)

const maxSentenceLen = 500

// Stats holds loader statistics for logging.
type Stats struct {
	TotalLines  int
	SkippedLong int
	Malformed   int
	Pairs       int
	Words       int
}

// Provider is an in-memory index of sentence pairs by word.
type Provider struct {
	pairs  []domain.Example
	byWord map[string][]int
	stats  Stats
}

// Load reads the pair file at filePath and indexes every pair under each
// lowercase word of its source sentence. Lines with fewer than four
// fields are skipped, as are sentences longer than 500 bytes.
func Load(filePath string, logger *slog.Logger) (*Provider, error) {
	log := logger.With("adapter", "tatoeba")

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("tatoeba: open file: %w", err)
	}
	defer f.Close()

	p := &Provider{byWord: make(map[string][]int)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		p.stats.TotalLines++

		fields := strings.SplitN(scanner.Text(), "\t", 4)
		if len(fields) < 4 {
			p.stats.Malformed++
			continue
		}

		source := strings.TrimSpace(fields[1])
		target := strings.TrimSpace(fields[3])
		if len(source) > maxSentenceLen {
			p.stats.SkippedLong++
			continue
		}

		idx := len(p.pairs)
		p.pairs = append(p.pairs, domain.Example{Source: source, Target: target})
		for _, w := range lexicon.Words(source) {
			p.byWord[w] = append(p.byWord[w], idx)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tatoeba: scanner error: %w", err)
	}

	p.stats.Pairs = len(p.pairs)
	p.stats.Words = len(p.byWord)

	log.Info("tatoeba pairs loaded",
		slog.String("path", filePath),
		slog.Int("lines", p.stats.TotalLines),
		slog.Int("pairs", p.stats.Pairs),
		slog.Int("words", p.stats.Words),
		slog.Int("skipped_long", p.stats.SkippedLong),
		slog.Int("malformed", p.stats.Malformed),
	)

	return p, nil
}

// Stats returns the loader statistics.
func (p *Provider) Stats() Stats { return p.stats }

// Examples yields the pairs whose source contains word, in file order.
func (p *Provider) Examples(ctx context.Context, word string) iter.Seq2[domain.Example, error] {
	return func(yield func(domain.Example, error) bool) {
		for _, idx := range p.byWord[domain.NormalizeWord(word)] {
			if err := ctx.Err(); err != nil {
				yield(domain.Example{}, err)
				return
			}
			if !yield(p.pairs[idx], nil) {
				return
			}
		}
	}
}
