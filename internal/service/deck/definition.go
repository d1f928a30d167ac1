package deck

import (
	"fmt"
	"html"
	"strings"

	"github.com/heartmarshall/nlvocab/internal/domain"
)

// DefinitionHTML renders etymologies as the note's definition field. Each
// group becomes a numbered heading with a list of senses; form words of a
// sense are nested below it with their own groups.
func DefinitionHTML(etys []domain.Etymology) string {
	var b strings.Builder
	for i, ety := range etys {
		fmt.Fprintf(&b, `<div class="etimology">Etimology %d</div><ul>`, i+1)
		for _, def := range ety.Definitions {
			b.WriteString("<li>")
			writeLines(&b, def.Text)
			for _, fw := range def.FormWords {
				for j, fe := range fw.Etymologies {
					fmt.Fprintf(&b, `<div><div class="etimology">Etimology %d for %s</div><ul>`, j+1, html.EscapeString(fw.Text))
					for _, fd := range fe.Definitions {
						b.WriteString("<li>")
						writeLines(&b, fd.Text)
						b.WriteString("</li>")
					}
					b.WriteString("</ul></div>")
				}
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

func writeLines(b *strings.Builder, text string) {
	for line := range strings.SplitSeq(text, "\n") {
		b.WriteString("<div>")
		b.WriteString(html.EscapeString(strings.TrimSpace(line)))
		b.WriteString("</div>")
	}
}
