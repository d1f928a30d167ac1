package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Log         LogConfig         `yaml:"log"`
	Files       FilesConfig       `yaml:"files"`
	Analyzer    AnalyzerConfig    `yaml:"analyzer"`
	Finder      FinderConfig      `yaml:"finder"`
	NLP         NLPConfig         `yaml:"nlp"`
	Sentences   SentencesConfig   `yaml:"sentences"`
	Translation TranslationConfig `yaml:"translation"`
	Speech      SpeechConfig      `yaml:"speech"`
	Lookup      LookupConfig      `yaml:"lookup"`
	Deck        DeckConfig        `yaml:"deck"`
	Database    DatabaseConfig    `yaml:"database"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// FilesConfig holds paths of the persisted vocabulary state.
type FilesConfig struct {
	KnownWords       string `yaml:"known_words"       env:"FILES_KNOWN_WORDS"       env-default:"known.txt"`
	UnknownWords     string `yaml:"unknown_words"     env:"FILES_UNKNOWN_WORDS"     env-default:"unknown.txt"`
	TranslationCache string `yaml:"translation_cache" env:"FILES_TRANSLATION_CACHE" env-default:".deepl_cache.txt"`
	Dictionary       string `yaml:"dictionary"        env:"FILES_DICTIONARY"        env-default:"dutch-dictionary.json"`
	Stopwords        string `yaml:"stopwords"         env:"FILES_STOPWORDS"`
}

// AnalyzerConfig holds the triage stopping rule.
type AnalyzerConfig struct {
	CoverageCutoff float64 `yaml:"coverage_cutoff" env:"ANALYZER_COVERAGE_CUTOFF" env-default:"0.95"`
	FrequencyFloor int     `yaml:"frequency_floor" env:"ANALYZER_FREQUENCY_FLOOR" env-default:"4"`
}

// FinderConfig holds the candidate retrieval bounds.
type FinderConfig struct {
	MaxDuplicates int `yaml:"max_duplicates" env:"FINDER_MAX_DUPLICATES" env-default:"20"`
	MaxExamined   int `yaml:"max_examined"   env:"FINDER_MAX_EXAMINED"   env-default:"300"`
	PerfectWanted int `yaml:"perfect_wanted" env:"FINDER_PERFECT_WANTED" env-default:"10"`
	PerfectScore  int `yaml:"perfect_score"  env:"FINDER_PERFECT_SCORE"  env-default:"0"`
}

// NLPConfig selects the lemmatizer.
type NLPConfig struct {
	Lemmatizer string `yaml:"lemmatizer"  env:"NLP_LEMMATIZER"  env-default:"lexicon"`
	LemmaTable string `yaml:"lemma_table" env:"NLP_LEMMA_TABLE" env-default:"lemmas.tsv"`
	SpacyURL   string `yaml:"spacy_url"   env:"NLP_SPACY_URL"   env-default:"http://127.0.0.1:8765"`
}

// SentencesConfig selects the example sentence provider.
type SentencesConfig struct {
	Provider    string `yaml:"provider"     env:"SENTENCES_PROVIDER"     env-default:"reverso"`
	SourceLang  string `yaml:"source_lang"  env:"SENTENCES_SOURCE_LANG"  env-default:"nl"`
	TargetLang  string `yaml:"target_lang"  env:"SENTENCES_TARGET_LANG"  env-default:"en"`
	TatoebaPath string `yaml:"tatoeba_path" env:"SENTENCES_TATOEBA_PATH"`
}

// TranslationConfig selects the on-demand translation service.
type TranslationConfig struct {
	Provider  string `yaml:"provider"    env:"TRANSLATION_PROVIDER"    env-default:"deepl"`
	DeepLKey  string `yaml:"deepl_key"   env:"DEEPL_KEY"`
	LLMAPIKey string `yaml:"llm_api_key" env:"TRANSLATION_LLM_API_KEY"`
	LLMModel  string `yaml:"llm_model"   env:"TRANSLATION_LLM_MODEL"   env-default:"claude-sonnet-4-5"`
}

// SpeechConfig holds Azure speech synthesis settings.
type SpeechConfig struct {
	Key    string `yaml:"key"    env:"SPEECH_KEY"`
	Region string `yaml:"region" env:"SPEECH_REGION"`
	Voice  string `yaml:"voice"  env:"SPEECH_VOICE"  env-default:"nl-NL-MaartenNeural"`
	Format string `yaml:"format" env:"SPEECH_FORMAT" env-default:"audio-24khz-96kbitrate-mono-mp3"`
}

// LookupConfig holds dictionary lookup settings.
type LookupConfig struct {
	Language string `yaml:"language" env:"LOOKUP_LANGUAGE" env-default:"nl"`
}

// DeckConfig holds deck generation settings.
type DeckConfig struct {
	RequestDelay time.Duration `yaml:"request_delay" env:"DECK_REQUEST_DELAY" env-default:"660ms"`
	NoteType     string        `yaml:"note_type"     env:"DECK_NOTE_TYPE"     env-default:"Generated Dutch Sentence"`
}

// DatabaseConfig holds PostgreSQL connection settings for corpus publication.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

var (
	lemmatizers          = []string{"lexicon", "spacy"}
	sentenceProviders    = []string{"reverso", "tatoeba"}
	translationProviders = []string{"deepl", "llm"}
)

// IsKnownLemmatizer checks the lemmatizer name against the supported set.
func IsKnownLemmatizer(name string) bool { return slices.Contains(lemmatizers, name) }

// IsKnownSentenceProvider checks the provider name against the supported set.
func IsKnownSentenceProvider(name string) bool { return slices.Contains(sentenceProviders, name) }

// IsKnownTranslationProvider checks the provider name against the supported set.
func IsKnownTranslationProvider(name string) bool {
	return slices.Contains(translationProviders, name)
}
