package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// ToggleResult reports what Toggle did and the row it touched.
type ToggleResult struct {
	Action domain.ToggleAction
	Word   domain.SavedWord
}

// Toggle saves the word when (word, language) is not stored yet and removes
// it when it is.
func (s *Service) Toggle(ctx context.Context, input ToggleInput) (*ToggleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.Configured() {
		return nil, domain.ErrNotConfigured
	}

	word := strings.TrimSpace(input.Word)
	var result ToggleResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.words.GetByWord(txCtx, word, input.Language)
		switch {
		case err == nil:
			if _, err := s.words.Delete(txCtx, existing.ID); err != nil {
				return fmt.Errorf("delete word: %w", err)
			}
			result = ToggleResult{Action: domain.ToggleActionDelete, Word: *existing}
			return nil

		case errors.Is(err, domain.ErrNotFound):
			saved, err := s.words.Create(txCtx, domain.SavedWord{
				Word:          word,
				Meaning:       strings.TrimSpace(input.Meaning),
				Pronunciation: trimOrNil(input.Pronunciation),
				Language:      input.Language,
			})
			if err != nil {
				return fmt.Errorf("create word: %w", err)
			}
			result = ToggleResult{Action: domain.ToggleActionSave, Word: *saved}
			return nil

		default:
			return fmt.Errorf("get word: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(ctx, input.Language)

	s.log.InfoContext(ctx, "vocabulary toggled",
		slog.String("action", result.Action.String()),
		slog.String("word", word),
		slog.String("language", input.Language.String()),
	)

	return &result, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
