package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Delete removes one saved word.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if !s.Configured() {
		return domain.ErrNotConfigured
	}

	key, err := s.words.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.cache.invalidate(ctx, key.Language)

	s.log.InfoContext(ctx, "vocabulary word deleted",
		slog.String("id", id.String()),
		slog.String("word", key.Word),
		slog.String("language", key.Language.String()),
	)
	return nil
}

// DeleteMany removes every listed word in one transaction and returns how
// many rows went away. Ids that do not exist are skipped.
func (s *Service) DeleteMany(ctx context.Context, input DeleteManyInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	if !s.Configured() {
		return 0, domain.ErrNotConfigured
	}

	var keys []domain.WordKey
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		keys, err = s.words.DeleteMany(txCtx, input.IDs)
		if err != nil {
			return fmt.Errorf("delete words: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	seen := make(map[domain.Language]bool, len(domain.Languages()))
	for _, k := range keys {
		if !seen[k.Language] {
			seen[k.Language] = true
			s.cache.invalidate(ctx, k.Language)
		}
	}

	s.log.InfoContext(ctx, "vocabulary words deleted",
		slog.Int("requested", len(input.IDs)),
		slog.Int("deleted", len(keys)),
	)
	return len(keys), nil
}
