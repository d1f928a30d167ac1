package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares a word for set membership checks:
//   - NFC composition, so "é" typed two ways compares equal
//   - trims surrounding whitespace
//   - Dutch-aware lowercasing
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return cases.Lower(language.Dutch).String(norm.NFC.String(word))
}

// LowerText lowercases a full line of text with Dutch casing rules.
// A Caser keeps state, so one is created per call.
func LowerText(text string) string {
	return cases.Lower(language.Dutch).String(text)
}

// IsAlpha reports whether s is non-empty and consists of letters only.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// SanitizeField replaces the delimiters of the tab-separated file formats
// (tab, CR, LF) with a single space.
func SanitizeField(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return ' '
		}
		return r
	}, s)
}
