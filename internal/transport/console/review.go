package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/internal/service/finder"
)

const indent = "    "

var reviewChoices = []string{"y", "n", "p", "t", "k", "a"}

// Review shows one candidate sentence for a word with its translation and
// the word's etymologies, and asks what to do. End of input counts as abort.
func (c *Console) Review(ctx context.Context, v finder.ReviewView) (domain.ReviewAction, error) {
	c.clear()

	c.field("Known words:", v.Known)
	c.field("Unknown words:", v.Unknown)
	c.field("Generated sentences:", v.Generated)
	fmt.Fprintln(c.out)
	c.field("Word:", fmt.Sprintf("%s (%d out of %d)", v.Word, v.WordIndex, v.WordTotal))
	c.field("Sentence:", c.sentence(v.Candidate.Tokens))
	c.field(v.TranslationSource+" translation:", v.Translation)
	c.field("Candidate:", fmt.Sprintf("%d out of %d", v.Position, v.Total))
	fmt.Fprintln(c.out)

	if len(v.Etymologies) > 0 {
		c.etymologies(v.Etymologies)
		fmt.Fprintln(c.out)
	}
	if v.Notice != "" {
		fmt.Fprintln(c.out, v.Notice)
		fmt.Fprintln(c.out)
	}

	fmt.Fprintln(c.out, "y: accept the proposed candidate, go to the next word")
	fmt.Fprintln(c.out, "n: next suggestion for this word")
	fmt.Fprintln(c.out, "p: previous suggestion for this word")
	fmt.Fprintln(c.out, "t: swap between translation sources")
	fmt.Fprintln(c.out, "k: mark word as known")
	fmt.Fprintln(c.out, "a: abort the operation and exit the program (progress is saved)")

	choice, err := c.choose(ctx, reviewChoices)
	if errors.Is(err, io.EOF) {
		return domain.ReviewActionAbort, nil
	}
	if err != nil {
		return "", err
	}
	return domain.ReviewAction(choice), nil
}

// sentence joins tokens back into text. A space goes before an opening
// parenthesis or a token starting with a letter or digit, unless the
// previous token is an opening parenthesis.
func (c *Console) sentence(tokens []domain.AnnotatedToken) string {
	var b strings.Builder
	last := ""
	for i, tok := range tokens {
		if i > 0 && (tok.Text == "(" || startsAlnum(tok.Text)) && last != "(" {
			b.WriteByte(' ')
		}
		b.WriteString(c.paint(tok.Text, tokenColor(tok.Classification)))
		last = tok.Text
	}
	return b.String()
}

func startsAlnum(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

func tokenColor(c domain.Classification) string {
	switch c {
	case domain.ClassificationUnknown:
		return ansiRed
	case domain.ClassificationFuture:
		return ansiYellow
	}
	return ""
}

func (c *Console) etymologies(etys []domain.Etymology) {
	for i, ety := range etys {
		fmt.Fprintf(c.out, "Etimology %d:\n", i+1)
		for j, def := range ety.Definitions {
			text := strings.ReplaceAll(def.Text, "\n", "\n"+indent+"  ")
			fmt.Fprintf(c.out, "%s- %s\n", indent, text)

			if len(def.FormWords) == 0 {
				continue
			}
			fmt.Fprintln(c.out)
			for _, fw := range def.FormWords {
				for k, fe := range fw.Etymologies {
					fmt.Fprintf(c.out, "%s  Etimology %d for %s:\n", indent, k+1, fw.Text)
					for _, fd := range fe.Definitions {
						fmt.Fprintf(c.out, "%s%s  - %s\n", indent, indent, fd.Text)
					}
				}
			}
			if j != len(ety.Definitions)-1 {
				fmt.Fprintln(c.out)
			}
		}
	}
}
