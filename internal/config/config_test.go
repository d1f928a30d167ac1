package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves the test into an empty directory so no stray
// config.yaml or .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

const validYAML = `
log:
  level: "debug"
  format: "json"

files:
  known_words: "data/known.txt"
  unknown_words: "data/unknown.txt"

analyzer:
  coverage_cutoff: 0.9
  frequency_floor: 2

finder:
  max_duplicates: 5
  max_examined: 50
  perfect_wanted: 3

sentences:
  provider: "tatoeba"
  tatoeba_path: "sentences.tsv"

translation:
  provider: "llm"
  llm_api_key: "sk-test"

speech:
  key: "speech-key"
  region: "westeurope"

deck:
  request_delay: "1s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
`

func validConfig() *Config {
	return &Config{
		Log:         LogConfig{Level: "info", Format: "text"},
		Analyzer:    AnalyzerConfig{CoverageCutoff: 0.95, FrequencyFloor: 4},
		Finder:      FinderConfig{MaxDuplicates: 20, MaxExamined: 300, PerfectWanted: 10},
		NLP:         NLPConfig{Lemmatizer: "lexicon"},
		Sentences:   SentencesConfig{Provider: "reverso", SourceLang: "nl", TargetLang: "en"},
		Translation: TranslationConfig{Provider: "deepl", DeepLKey: "key:fx"},
		Speech:      SpeechConfig{Key: "k", Region: "westeurope"},
		Deck:        DeckConfig{RequestDelay: 660 * time.Millisecond},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want json", cfg.Log.Format)
	}
	if cfg.Files.KnownWords != "data/known.txt" {
		t.Errorf("files.known_words = %q", cfg.Files.KnownWords)
	}
	if cfg.Analyzer.CoverageCutoff != 0.9 || cfg.Analyzer.FrequencyFloor != 2 {
		t.Errorf("analyzer = %+v", cfg.Analyzer)
	}
	if cfg.Finder.MaxDuplicates != 5 || cfg.Finder.MaxExamined != 50 || cfg.Finder.PerfectWanted != 3 {
		t.Errorf("finder = %+v", cfg.Finder)
	}
	if cfg.Sentences.Provider != "tatoeba" {
		t.Errorf("sentences.provider = %q", cfg.Sentences.Provider)
	}
	if cfg.Deck.RequestDelay != time.Second {
		t.Errorf("deck.request_delay = %v, want 1s", cfg.Deck.RequestDelay)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Defaults for fields absent from YAML.
	if cfg.Files.TranslationCache != ".deepl_cache.txt" {
		t.Errorf("files.translation_cache = %q", cfg.Files.TranslationCache)
	}
	if cfg.Speech.Voice != "nl-NL-MaartenNeural" {
		t.Errorf("speech.voice = %q", cfg.Speech.Voice)
	}
	if err := cfg.RequireFinder(); err != nil {
		t.Errorf("RequireFinder: %v", err)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, validYAML))
	t.Setenv("FINDER_PERFECT_WANTED", "7")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Finder.PerfectWanted != 7 {
		t.Errorf("finder.perfect_wanted = %d, want 7 (ENV override)", cfg.Finder.PerfectWanted)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analyzer.CoverageCutoff != 0.95 {
		t.Errorf("analyzer.coverage_cutoff = %v, want 0.95 (default)", cfg.Analyzer.CoverageCutoff)
	}
	if cfg.Analyzer.FrequencyFloor != 4 {
		t.Errorf("analyzer.frequency_floor = %d, want 4 (default)", cfg.Analyzer.FrequencyFloor)
	}
	if cfg.Finder.MaxDuplicates != 20 || cfg.Finder.MaxExamined != 300 || cfg.Finder.PerfectWanted != 10 {
		t.Errorf("finder = %+v, want 20/300/10 (default)", cfg.Finder)
	}
	if cfg.Sentences.Provider != "reverso" {
		t.Errorf("sentences.provider = %q, want reverso (default)", cfg.Sentences.Provider)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DEEPL_KEY", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("NLP_LEMMATIZER=spacy\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("NLP_LEMMATIZER") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NLP.Lemmatizer != "spacy" {
		t.Errorf("nlp.lemmatizer = %q, want spacy (from .env)", cfg.NLP.Lemmatizer)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, dir, `{{{invalid yaml`))

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"cutoff zero", func(c *Config) { c.Analyzer.CoverageCutoff = 0 }, true},
		{"cutoff above one", func(c *Config) { c.Analyzer.CoverageCutoff = 1.01 }, true},
		{"cutoff exactly one", func(c *Config) { c.Analyzer.CoverageCutoff = 1 }, false},
		{"negative floor", func(c *Config) { c.Analyzer.FrequencyFloor = -1 }, true},
		{"zero floor", func(c *Config) { c.Analyzer.FrequencyFloor = 0 }, false},
		{"zero max duplicates", func(c *Config) { c.Finder.MaxDuplicates = 0 }, true},
		{"zero max examined", func(c *Config) { c.Finder.MaxExamined = 0 }, true},
		{"zero perfect wanted", func(c *Config) { c.Finder.PerfectWanted = 0 }, true},
		{"negative perfect score", func(c *Config) { c.Finder.PerfectScore = -1 }, true},
		{"unknown lemmatizer", func(c *Config) { c.NLP.Lemmatizer = "stanza" }, true},
		{"unknown sentence provider", func(c *Config) { c.Sentences.Provider = "linguee" }, true},
		{"tatoeba without path", func(c *Config) { c.Sentences.Provider = "tatoeba" }, true},
		{"tatoeba with path", func(c *Config) {
			c.Sentences.Provider = "tatoeba"
			c.Sentences.TatoebaPath = "nld.tsv"
		}, false},
		{"unknown translation provider", func(c *Config) { c.Translation.Provider = "google" }, true},
		{"negative request delay", func(c *Config) { c.Deck.RequestDelay = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error should wrap ErrValidation, got %v", err)
			}
		})
	}
}

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Analyzer.CoverageCutoff = 2
	cfg.Finder.MaxExamined = -1

	err := cfg.Validate()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func TestRequireFinder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid deepl", func(c *Config) {}, false},
		{"missing deepl key", func(c *Config) { c.Translation.DeepLKey = "" }, true},
		{"llm with key", func(c *Config) {
			c.Translation.Provider = "llm"
			c.Translation.DeepLKey = ""
			c.Translation.LLMAPIKey = "sk"
		}, false},
		{"llm without key", func(c *Config) { c.Translation.Provider = "llm" }, true},
		{"missing speech key", func(c *Config) { c.Speech.Key = "" }, true},
		{"missing speech region", func(c *Config) { c.Speech.Region = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.RequireFinder(); (err != nil) != tt.wantErr {
				t.Fatalf("RequireFinder() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireDatabase(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.RequireDatabase(); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty DSN, got %v", err)
	}

	cfg.Database.DSN = "postgres://u:p@localhost:5432/db"
	if err := cfg.RequireDatabase(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
