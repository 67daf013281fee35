package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/wordguide"
)

const (
	ansiHighlight = "\x1b[1;33m"
	ansiReset     = "\x1b[0m"
)

type renderer struct {
	w     io.Writer
	color bool
}

// translation prints the language pair and the translated text with guide
// words highlighted.
func (r renderer) translation(result *domain.TranslationResult, target domain.Language) {
	fmt.Fprintf(r.w, "%s → %s\n", result.DetectedSource, target)
	fmt.Fprintln(r.w, r.highlight(result.TranslatedText, result.WordGuide))
}

func (r renderer) highlight(text string, items []domain.GlossaryItem) string {
	var b strings.Builder
	for _, seg := range wordguide.Segments(text, wordguide.Match(text, items)) {
		switch {
		case seg.Match == nil:
			b.WriteString(seg.Text)
		case r.color:
			b.WriteString(ansiHighlight + seg.Text + ansiReset)
		default:
			b.WriteString("[" + seg.Text + "]")
		}
	}
	return b.String()
}

// guide prints one row per glossary item. saved[i] marks item i with *.
func (r renderer) guide(items []domain.GlossaryItem, saved []bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(r.w)

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	for i, item := range items {
		mark := " "
		if i < len(saved) && saved[i] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, item.Word, item.PronunciationText(), item.Meaning)
		if ex := wordguide.ExampleSentence(item); ex != "" {
			fmt.Fprintf(tw, "\t\t\t  e.g. %s\n", ex)
		}
	}
	tw.Flush()
}

func (r renderer) words(words []domain.SavedWord) {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWORD\tPRONUNCIATION\tMEANING\tSAVED")
	for _, w := range words {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			w.ID, w.Word, w.PronunciationText(), w.Meaning, w.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	tw.Flush()
}
