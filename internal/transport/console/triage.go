package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/internal/service/analyzer"
)

var triageChoices = []string{"k", "u", "a"}

// PromptTriage shows one word of the frequency ranking and asks whether it
// is known. End of input counts as abort.
func (c *Console) PromptTriage(ctx context.Context, v analyzer.TriageView) (domain.TriageAction, error) {
	c.clear()

	c.field("Known words:", v.Known)
	c.field("Unknown words:", v.Unknown)
	c.field("Words found in file:", v.Found)
	fmt.Fprintln(c.out)
	c.field("Word:", v.Word)
	c.field("Frequency:", v.Frequency)
	c.field("Index:", v.Index)
	fmt.Fprintln(c.out)

	fmt.Fprintf(c.out, "k: mark '%s' as known\n", v.Word)
	fmt.Fprintf(c.out, "u: mark '%s' as unknown\n", v.Word)
	fmt.Fprintln(c.out, "a: abort the operation and exit the program (progress is saved)")

	choice, err := c.choose(ctx, triageChoices)
	if errors.Is(err, io.EOF) {
		return domain.TriageActionAbort, nil
	}
	if err != nil {
		return "", err
	}
	return domain.TriageAction(choice), nil
}
