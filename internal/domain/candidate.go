package domain

import "unicode/utf8"

// AnnotatedToken is a sentence token with its classification for display.
type AnnotatedToken struct {
	Text           string
	Classification Classification
}

// Candidate is an example sentence scored for review.
type Candidate struct {
	Source string
	Target string
	Tokens []AnnotatedToken
	// Score is the number of tokens classified as unknown.
	Score int
}

// Length returns the sentence length in characters.
func (c Candidate) Length() int {
	return utf8.RuneCountInString(c.Source)
}

// Less orders candidates by score, then by sentence length.
func (c Candidate) Less(other Candidate) bool {
	if c.Score != other.Score {
		return c.Score < other.Score
	}
	return c.Length() < other.Length()
}

// Etymology is one group of definitions for a term (one per part of speech).
type Etymology struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is a single sense. FormWords lists the lemmas this sense is an
// inflection of, each with its own etymologies.
type Definition struct {
	Text      string
	FormWords []FormWord
}

// FormWord is a word referenced by a form-of definition.
type FormWord struct {
	Text        string
	Etymologies []Etymology
}
