// Package wordguide maps glossary items returned by the model back onto the
// rendered translation text and decides which language each item belongs to.
package wordguide

import (
	"slices"
	"strings"
	"unicode"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Match finds every case-insensitive occurrence of every glossary word in
// text. After a hit at position p the scan resumes at p+1, so overlapping
// occurrences are all reported. Results are ordered by start offset; matches
// that start at the same offset keep glossary order. Items with a blank word
// are skipped.
//
// Offsets are rune indexes into text.
func Match(text string, items []domain.GlossaryItem) []domain.WordMatch {
	if text == "" || len(items) == 0 {
		return []domain.WordMatch{}
	}

	haystack := foldRunes(text)
	matches := make([]domain.WordMatch, 0)

	for _, item := range items {
		if strings.TrimSpace(item.Word) == "" {
			continue
		}
		needle := foldRunes(item.Word)

		for from := 0; from+len(needle) <= len(haystack); {
			idx := indexRunes(haystack[from:], needle)
			if idx < 0 {
				break
			}
			start := from + idx
			matches = append(matches, domain.WordMatch{
				Word:  item.Word,
				Item:  item,
				Start: start,
				End:   start + len(needle),
			})
			from = start + 1
		}
	}

	slices.SortStableFunc(matches, func(a, b domain.WordMatch) int {
		return a.Start - b.Start
	})
	return matches
}

// foldRunes lower-cases rune by rune so offsets stay aligned with the input.
func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
