package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Credentials are not checked here, since most commands never call the
// services that need them; see RequireFinder and RequireDatabase.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if c.Analyzer.CoverageCutoff <= 0 || c.Analyzer.CoverageCutoff > 1 {
		errs = append(errs, domain.FieldError{
			Field:   "analyzer.coverage_cutoff",
			Message: fmt.Sprintf("must be in (0, 1] (got %v)", c.Analyzer.CoverageCutoff),
		})
	}
	if c.Analyzer.FrequencyFloor < 0 {
		errs = append(errs, domain.FieldError{
			Field:   "analyzer.frequency_floor",
			Message: fmt.Sprintf("must be >= 0 (got %d)", c.Analyzer.FrequencyFloor),
		})
	}

	if c.Finder.MaxDuplicates <= 0 {
		errs = append(errs, domain.FieldError{Field: "finder.max_duplicates", Message: "must be > 0"})
	}
	if c.Finder.MaxExamined <= 0 {
		errs = append(errs, domain.FieldError{Field: "finder.max_examined", Message: "must be > 0"})
	}
	if c.Finder.PerfectWanted <= 0 {
		errs = append(errs, domain.FieldError{Field: "finder.perfect_wanted", Message: "must be > 0"})
	}
	if c.Finder.PerfectScore < 0 {
		errs = append(errs, domain.FieldError{Field: "finder.perfect_score", Message: "must be >= 0"})
	}

	if !IsKnownLemmatizer(c.NLP.Lemmatizer) {
		errs = append(errs, domain.FieldError{Field: "nlp.lemmatizer", Message: fmt.Sprintf("unknown lemmatizer %q", c.NLP.Lemmatizer)})
	}
	if !IsKnownSentenceProvider(c.Sentences.Provider) {
		errs = append(errs, domain.FieldError{Field: "sentences.provider", Message: fmt.Sprintf("unknown provider %q", c.Sentences.Provider)})
	}
	if c.Sentences.Provider == "tatoeba" && strings.TrimSpace(c.Sentences.TatoebaPath) == "" {
		errs = append(errs, domain.FieldError{Field: "sentences.tatoeba_path", Message: "required for tatoeba provider"})
	}
	if !IsKnownTranslationProvider(c.Translation.Provider) {
		errs = append(errs, domain.FieldError{Field: "translation.provider", Message: fmt.Sprintf("unknown provider %q", c.Translation.Provider)})
	}

	if c.Deck.RequestDelay < 0 {
		errs = append(errs, domain.FieldError{Field: "deck.request_delay", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RequireFinder checks the credentials needed by the sentence finder:
// the selected translation service and speech synthesis.
func (c *Config) RequireFinder() error {
	var errs []domain.FieldError

	switch c.Translation.Provider {
	case "deepl":
		if c.Translation.DeepLKey == "" {
			errs = append(errs, domain.FieldError{Field: "translation.deepl_key", Message: "required (DEEPL_KEY)"})
		}
	case "llm":
		if c.Translation.LLMAPIKey == "" {
			errs = append(errs, domain.FieldError{Field: "translation.llm_api_key", Message: "required (TRANSLATION_LLM_API_KEY)"})
		}
	}

	if c.Speech.Key == "" {
		errs = append(errs, domain.FieldError{Field: "speech.key", Message: "required (SPEECH_KEY)"})
	}
	if c.Speech.Region == "" {
		errs = append(errs, domain.FieldError{Field: "speech.region", Message: "required (SPEECH_REGION)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RequireDatabase checks that a database DSN is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return domain.NewValidationError("database.dsn", "required (DATABASE_DSN)")
	}
	return nil
}
