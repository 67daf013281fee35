package wordguide

import (
	"strings"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Segment is a contiguous slice of rendered text. Match is nil for literal text.
type Segment struct {
	Text  string            `json:"text"`
	Match *domain.WordMatch `json:"match,omitempty"`
}

// Segments slices text into literal and highlighted spans in a single pass
// over matches (as returned by Match). A match that starts inside an already
// emitted highlight is dropped, so overlapping occurrences only show once.
func Segments(text string, matches []domain.WordMatch) []Segment {
	runes := []rune(text)
	segments := make([]Segment, 0, 2*len(matches)+1)

	cursor := 0
	for i := range matches {
		m := matches[i]
		if m.Start < cursor || m.End > len(runes) || m.Start >= m.End {
			continue
		}
		if m.Start > cursor {
			segments = append(segments, Segment{Text: string(runes[cursor:m.Start])})
		}
		segments = append(segments, Segment{Text: string(runes[m.Start:m.End]), Match: &m})
		cursor = m.End
	}
	if cursor < len(runes) {
		segments = append(segments, Segment{Text: string(runes[cursor:])})
	}
	return segments
}

// ExampleSentence returns the original-language part of a glossary example,
// which the model writes as "sentence (pronunciation, meaning)".
func ExampleSentence(item domain.GlossaryItem) string {
	if item.Example == nil {
		return ""
	}
	ex := *item.Example
	if i := strings.Index(ex, "("); i >= 0 {
		ex = ex[:i]
	}
	return strings.TrimSpace(ex)
}
