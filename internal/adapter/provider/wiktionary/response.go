package wiktionary

// apiResponse maps a language code to its usages.
type apiResponse map[string][]apiUsage

type apiUsage struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Language     string          `json:"language"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}
