package domain

// KnownWords is the set of words the learner already understands.
type KnownWords struct {
	words map[string]struct{}
}

// NewKnownWords creates a KnownWords set from the given words.
func NewKnownWords(words ...string) *KnownWords {
	k := &KnownWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		k.Insert(w)
	}
	return k
}

// Has reports whether word is known.
func (k *KnownWords) Has(word string) bool {
	_, ok := k.words[word]
	return ok
}

// Insert adds word to the set. It reports false if the word was already present.
func (k *KnownWords) Insert(word string) bool {
	if _, ok := k.words[word]; ok {
		return false
	}
	k.words[word] = struct{}{}
	return true
}

// Len returns the number of known words.
func (k *KnownWords) Len() int { return len(k.words) }

// UnknownWords maps words flagged for sentence-based learning to the
// frequency they had when triaged. Iteration follows first-insertion order.
type UnknownWords struct {
	freq  map[string]int
	order []string
}

// NewUnknownWords creates an empty UnknownWords map.
func NewUnknownWords() *UnknownWords {
	return &UnknownWords{freq: make(map[string]int)}
}

// Set records the frequency of word. A repeated word keeps its original position.
func (u *UnknownWords) Set(word string, frequency int) {
	if _, ok := u.freq[word]; !ok {
		u.order = append(u.order, word)
	}
	u.freq[word] = frequency
}

// Has reports whether word has been triaged as unknown.
func (u *UnknownWords) Has(word string) bool {
	_, ok := u.freq[word]
	return ok
}

// Words returns the words in first-insertion order.
func (u *UnknownWords) Words() []string {
	out := make([]string, len(u.order))
	copy(out, u.order)
	return out
}

// Len returns the number of unknown words.
func (u *UnknownWords) Len() int { return len(u.order) }

// WordCount is one entry of a frequency ranking.
type WordCount struct {
	Word      string
	Frequency int
}

// Token is one lemmatizer output: the dictionary form and the text as written.
type Token struct {
	Lemma   string
	Surface string
}

// Example is a source sentence with its translation, as returned by a
// sentence provider.
type Example struct {
	Source string
	Target string
}

// OutputRecord is one accepted sentence in the output corpus.
type OutputRecord struct {
	Word        string
	Sentence    string
	Translation string
	AudioFile   string
}

// SentenceCorpus is the set of already accepted sentences keyed by word.
type SentenceCorpus struct {
	words   map[string]struct{}
	records []OutputRecord
}

// NewSentenceCorpus creates a corpus from previously accepted records.
func NewSentenceCorpus(records ...OutputRecord) *SentenceCorpus {
	c := &SentenceCorpus{words: make(map[string]struct{}, len(records))}
	for _, r := range records {
		c.Register(r)
	}
	return c
}

// Register adds an accepted record. A repeated word is registered once
// but both records are kept.
func (c *SentenceCorpus) Register(r OutputRecord) {
	c.words[r.Word] = struct{}{}
	c.records = append(c.records, r)
}

// Has reports whether a sentence was already accepted for word.
func (c *SentenceCorpus) Has(word string) bool {
	_, ok := c.words[word]
	return ok
}

// Records returns all records in acceptance order.
func (c *SentenceCorpus) Records() []OutputRecord {
	out := make([]OutputRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of words with an accepted sentence.
func (c *SentenceCorpus) Len() int { return len(c.words) }
