package lexicon

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word and punctuation tokens, keeping the
// original spelling. A word is a run of letters, digits and marks; an
// apostrophe or hyphen is kept inside a word when a letter follows it
// ("zo'n", "auto's", "e-mail"). Every other non-space rune is a token on
// its own. Whitespace separates tokens and is dropped.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	runes := []rune(text)

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			word.WriteRune(r)
		case (r == '\'' || r == '’' || r == '-') && word.Len() > 0 &&
			i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

// Words returns the unique lowercase word tokens of text, in order of
// first appearance. Punctuation is dropped.
func Words(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range Tokenize(text) {
		if !isWordRune([]rune(tok)[0]) {
			continue
		}
		w := strings.ToLower(tok)
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
