package filestore

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// TranslationCache is a persisted sentence to translation map.
// Lines are "sentence\ttranslation".
type TranslationCache struct {
	path    string
	entries map[string]string
}

// OpenTranslationCache loads the cache file at path.
// A missing file yields an empty cache.
func OpenTranslationCache(path string) (*TranslationCache, error) {
	c := &TranslationCache{path: path, entries: make(map[string]string)}
	err := scanLines(path, func(n int, line string) error {
		if line == "" {
			return nil
		}
		sentence, translation, ok := strings.Cut(line, "\t")
		if !ok {
			return domain.NewParseError(path, n, "missing tab separator")
		}
		c.entries[sentence] = translation
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filestore: load translation cache: %w", err)
	}
	return c, nil
}

// Get returns the cached translation of sentence. Sentences are keyed as
// written to the file, so tabs and line breaks match spaces.
func (c *TranslationCache) Get(sentence string) (string, bool) {
	t, ok := c.entries[domain.SanitizeField(sentence)]
	return t, ok
}

// Put appends a translation to the file and the in-memory map.
func (c *TranslationCache) Put(sentence, translation string) error {
	key, value := domain.SanitizeField(sentence), domain.SanitizeField(translation)
	if err := appendLine(c.path, key+"\t"+value+"\n"); err != nil {
		return fmt.Errorf("filestore: append translation cache: %w", err)
	}
	c.entries[key] = value
	return nil
}

// Len returns the number of cached translations.
func (c *TranslationCache) Len() int { return len(c.entries) }
