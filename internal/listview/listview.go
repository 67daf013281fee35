// Package listview filters, sorts and paginates an in-memory vocabulary list.
// All functions are pure: inputs are never modified.
package listview

import (
	"slices"
	"strings"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Page is one page of a list.
type Page struct {
	Items       []domain.SavedWord
	TotalItems  int
	TotalPages  int
	CurrentPage int
}

// Query describes a full display refresh.
type Query struct {
	Search   string
	Column   domain.SortColumn
	Order    domain.SortOrder
	Page     int
	PageSize int
}

// Apply runs Filter, Sort and Paginate in that order.
// An empty Column keeps the incoming order.
func Apply(words []domain.SavedWord, q Query) Page {
	filtered := Filter(words, q.Search)
	if q.Column != "" {
		filtered = Sort(filtered, q.Column, q.Order)
	}
	return Paginate(filtered, q.Page, q.PageSize)
}

// Filter keeps words whose word, meaning or pronunciation contains term,
// ignoring case. A blank term returns words unchanged.
func Filter(words []domain.SavedWord, term string) []domain.SavedWord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return words
	}

	out := make([]domain.SavedWord, 0, len(words))
	for _, w := range words {
		if strings.Contains(strings.ToLower(w.Word), term) ||
			strings.Contains(strings.ToLower(w.Meaning), term) ||
			strings.Contains(strings.ToLower(w.PronunciationText()), term) {
			out = append(out, w)
		}
	}
	return out
}

// Sort returns a sorted copy of words. created_at compares as a timestamp
// (zero time first in ascending order); other columns compare as lower-cased
// strings with a missing value treated as empty. Equal keys keep their
// relative order. An unknown column returns an unsorted copy.
func Sort(words []domain.SavedWord, column domain.SortColumn, order domain.SortOrder) []domain.SavedWord {
	out := slices.Clone(words)
	if !column.IsValid() {
		return out
	}

	cmp := compareBy(column)
	if order == domain.SortOrderDesc {
		slices.SortStableFunc(out, func(a, b domain.SavedWord) int { return -cmp(a, b) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func compareBy(column domain.SortColumn) func(a, b domain.SavedWord) int {
	if column == domain.SortColumnCreatedAt {
		return func(a, b domain.SavedWord) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	key := func(w domain.SavedWord) string {
		switch column {
		case domain.SortColumnPronunciation:
			return strings.ToLower(w.PronunciationText())
		case domain.SortColumnMeaning:
			return strings.ToLower(w.Meaning)
		default:
			return strings.ToLower(w.Word)
		}
	}
	return func(a, b domain.SavedWord) int {
		return strings.Compare(key(a), key(b))
	}
}

// Paginate slices words into the requested page. TotalPages is at least 1,
// CurrentPage is clamped into [1, TotalPages] and a pageSize below 1 is
// treated as 1.
func Paginate(words []domain.SavedWord, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(words) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page = min(max(page, 1), totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(words))
	start = min(start, end)

	return Page{
		Items:       words[start:end:end],
		TotalItems:  len(words),
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
