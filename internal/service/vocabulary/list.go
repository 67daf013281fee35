package vocabulary

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/listview"
)

// List returns one page of the saved words of a language. Without a search
// or sort the newest words come first.
func (s *Service) List(ctx context.Context, input ListInput) (listview.Page, error) {
	if err := input.Validate(); err != nil {
		return listview.Page{}, err
	}

	words := []domain.SavedWord{}
	if s.Configured() {
		loaded, err := s.words.ListByLanguage(ctx, input.Language)
		if err != nil {
			return listview.Page{}, fmt.Errorf("list words: %w", err)
		}
		words = loaded
	}

	page := listview.Apply(words, input.query())
	if page.Items == nil {
		page.Items = []domain.SavedWord{}
	}
	return page, nil
}

// SavedWords returns the sorted spellings saved for lang.
func (s *Service) SavedWords(ctx context.Context, lang domain.Language) ([]string, error) {
	if !lang.IsValid() {
		return nil, domain.NewValidationError("language", "must be one of ko, th, en")
	}
	if !s.Configured() {
		return []string{}, nil
	}

	set, err := s.cache.get(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("load saved words: %w", err)
	}

	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	slices.Sort(out)
	return out, nil
}

// IsSaved reports whether (word, lang) is bookmarked.
func (s *Service) IsSaved(ctx context.Context, word string, lang domain.Language) (bool, error) {
	if !lang.IsValid() {
		return false, domain.NewValidationError("language", "must be one of ko, th, en")
	}
	if !s.Configured() {
		return false, nil
	}

	set, err := s.cache.get(ctx, lang)
	if err != nil {
		return false, fmt.Errorf("load saved words: %w", err)
	}
	_, ok := set[word]
	return ok, nil
}

// MarkSaved reports, for each glossary item, whether its word is saved in
// lang. The result is index-aligned with items.
func (s *Service) MarkSaved(ctx context.Context, lang domain.Language, items []domain.GlossaryItem) ([]bool, error) {
	flags := make([]bool, len(items))
	if len(items) == 0 || !s.Configured() {
		return flags, nil
	}
	if !lang.IsValid() {
		return nil, domain.NewValidationError("language", "must be one of ko, th, en")
	}

	set, err := s.cache.get(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("load saved words: %w", err)
	}
	for i, item := range items {
		_, flags[i] = set[item.Word]
	}
	return flags, nil
}
