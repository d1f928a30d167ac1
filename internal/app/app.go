// Package app builds the services of each command from the configuration.
// Process-wide resources (word lists, lemmatizer, HTTP clients) are created
// once here and passed into the services.
package app

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/heartmarshall/nlvocab/internal/adapter/filestore"
	"github.com/heartmarshall/nlvocab/internal/adapter/nlp/lexicon"
	"github.com/heartmarshall/nlvocab/internal/adapter/nlp/spacy"
	"github.com/heartmarshall/nlvocab/internal/adapter/nlp/wordlist"
	"github.com/heartmarshall/nlvocab/internal/adapter/postgres"
	"github.com/heartmarshall/nlvocab/internal/adapter/postgres/sentence"
	"github.com/heartmarshall/nlvocab/internal/adapter/provider/azuretts"
	"github.com/heartmarshall/nlvocab/internal/adapter/provider/deepl"
	"github.com/heartmarshall/nlvocab/internal/adapter/provider/llmtranslate"
	"github.com/heartmarshall/nlvocab/internal/adapter/provider/reverso"
	"github.com/heartmarshall/nlvocab/internal/adapter/provider/tatoeba"
	"github.com/heartmarshall/nlvocab/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/nlvocab/internal/config"
	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/internal/service/analyzer"
	"github.com/heartmarshall/nlvocab/internal/service/deck"
	"github.com/heartmarshall/nlvocab/internal/service/finder"
	"github.com/heartmarshall/nlvocab/internal/service/merger"
	"github.com/heartmarshall/nlvocab/internal/service/publish"
	"github.com/heartmarshall/nlvocab/internal/transport/console"
)

// Lemmatizer is implemented by every supported lemmatizer.
type Lemmatizer interface {
	Lemmatize(ctx context.Context, text string) ([]domain.Token, error)
}

// SentenceProvider is implemented by every supported example source.
type SentenceProvider interface {
	Examples(ctx context.Context, word string) iter.Seq2[domain.Example, error]
}

// Translator is implemented by every supported translation service.
type Translator interface {
	Translate(ctx context.Context, sentence string) (string, error)
}

// NewLemmatizer returns the configured lemmatizer.
func NewLemmatizer(cfg config.NLPConfig, log *slog.Logger) (Lemmatizer, error) {
	switch cfg.Lemmatizer {
	case "spacy":
		return spacy.NewClient(cfg.SpacyURL, log), nil
	case "lexicon":
		lem, err := lexicon.Load(cfg.LemmaTable, log)
		if err != nil {
			return nil, err
		}
		return lem, nil
	}
	return nil, domain.NewValidationError("nlp.lemmatizer", fmt.Sprintf("unknown lemmatizer %q", cfg.Lemmatizer))
}

// NewSentenceProvider returns the configured example source and its
// display label.
func NewSentenceProvider(cfg config.SentencesConfig, log *slog.Logger) (SentenceProvider, string, error) {
	switch cfg.Provider {
	case "reverso":
		return reverso.NewProvider(cfg.SourceLang, cfg.TargetLang, log), "Reverso", nil
	case "tatoeba":
		p, err := tatoeba.Load(cfg.TatoebaPath, log)
		if err != nil {
			return nil, "", err
		}
		return p, "Tatoeba", nil
	}
	return nil, "", domain.NewValidationError("sentences.provider", fmt.Sprintf("unknown provider %q", cfg.Provider))
}

// NewTranslator returns the configured translation service and its
// display label.
func NewTranslator(cfg config.TranslationConfig, log *slog.Logger) (Translator, string, error) {
	switch cfg.Provider {
	case "deepl":
		return deepl.NewTranslator(cfg.DeepLKey, log), "DeepL", nil
	case "llm":
		return llmtranslate.NewTranslator(cfg.LLMAPIKey, cfg.LLMModel, log), "Claude", nil
	}
	return nil, "", domain.NewValidationError("translation.provider", fmt.Sprintf("unknown provider %q", cfg.Provider))
}

// NewAnalyzer builds the frequency analyzer with its word lists and the
// known/unknown stores.
func NewAnalyzer(cfg *config.Config, log *slog.Logger, con *console.Console) (*analyzer.Service, error) {
	lem, err := NewLemmatizer(cfg.NLP, log)
	if err != nil {
		return nil, err
	}
	dictionary, err := wordlist.LoadDictionary(cfg.Files.Dictionary)
	if err != nil {
		return nil, err
	}
	stopwords, err := wordlist.Stopwords(cfg.Files.Stopwords)
	if err != nil {
		return nil, err
	}
	known, err := filestore.OpenKnown(cfg.Files.KnownWords)
	if err != nil {
		return nil, err
	}
	unknown, err := filestore.OpenUnknown(cfg.Files.UnknownWords)
	if err != nil {
		return nil, err
	}

	log.Info("analyzer ready",
		slog.Int("dictionary", dictionary.Len()),
		slog.Int("stopwords", stopwords.Len()),
		slog.Int("known", known.Len()),
		slog.Int("unknown", unknown.Len()),
	)

	return analyzer.NewService(log, analyzer.Config{
		CoverageCutoff: cfg.Analyzer.CoverageCutoff,
		FrequencyFloor: cfg.Analyzer.FrequencyFloor,
	}, lem, dictionary, stopwords, known, unknown, con), nil
}

// NewFinder builds the sentence finder writing to outputDir. The output
// directory must already be prepared.
func NewFinder(cfg *config.Config, log *slog.Logger, outputDir string, con *console.Console) (*finder.Service, error) {
	lem, err := NewLemmatizer(cfg.NLP, log)
	if err != nil {
		return nil, err
	}
	stopwords, err := wordlist.Stopwords(cfg.Files.Stopwords)
	if err != nil {
		return nil, err
	}
	known, err := filestore.OpenKnown(cfg.Files.KnownWords)
	if err != nil {
		return nil, err
	}
	corpus, err := filestore.OpenCorpus(outputDir)
	if err != nil {
		return nil, err
	}
	cache, err := filestore.OpenTranslationCache(cfg.Files.TranslationCache)
	if err != nil {
		return nil, err
	}
	provider, providerLabel, err := NewSentenceProvider(cfg.Sentences, log)
	if err != nil {
		return nil, err
	}
	translator, translatorLabel, err := NewTranslator(cfg.Translation, log)
	if err != nil {
		return nil, err
	}

	log.Info("finder ready",
		slog.String("output_dir", outputDir),
		slog.Int("known", known.Len()),
		slog.Int("generated", corpus.Len()),
		slog.Int("cached_translations", cache.Len()),
		slog.String("provider", providerLabel),
		slog.String("translator", translatorLabel),
	)

	return finder.NewService(log, finder.Config{
		MaxDuplicates:   cfg.Finder.MaxDuplicates,
		MaxExamined:     cfg.Finder.MaxExamined,
		PerfectWanted:   cfg.Finder.PerfectWanted,
		PerfectScore:    cfg.Finder.PerfectScore,
		ProviderLabel:   providerLabel,
		TranslatorLabel: translatorLabel,
	}, finder.Deps{
		Lemmatizer:  lem,
		Stopwords:   stopwords,
		Known:       known,
		Corpus:      corpus,
		Provider:    provider,
		Translator:  translator,
		Cache:       cache,
		Synthesizer: azuretts.NewSynthesizer(cfg.Speech.Key, cfg.Speech.Region, cfg.Speech.Voice, cfg.Speech.Format, log),
		Lookup:      wiktionary.NewProvider(cfg.Lookup.Language, log),
		Reviewer:    con,
	}), nil
}

// NewMerger builds the deck merger over the configured known-words file.
func NewMerger(cfg *config.Config, log *slog.Logger) (*merger.Service, error) {
	lem, err := NewLemmatizer(cfg.NLP, log)
	if err != nil {
		return nil, err
	}
	known, err := filestore.OpenKnown(cfg.Files.KnownWords)
	if err != nil {
		return nil, err
	}
	return merger.NewService(log, lem, known), nil
}

// NewDeck builds the deck generator with dictionary lookups.
func NewDeck(cfg *config.Config, log *slog.Logger) *deck.Service {
	return deck.NewService(log, deck.Config{
		RequestDelay: cfg.Deck.RequestDelay,
		NoteType:     cfg.Deck.NoteType,
	}, wiktionary.NewProvider(cfg.Lookup.Language, log))
}

// NewPublisher connects to the corpus database, optionally applying
// migrations first, and builds the publish service. The returned function
// closes the pool.
func NewPublisher(ctx context.Context, cfg *config.Config, log *slog.Logger, migrate bool) (*publish.Service, func(), error) {
	if migrate {
		if _, err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	repo := sentence.New(pool, postgres.NewTxManager(pool))
	return publish.NewService(log, repo, 0), pool.Close, nil
}
