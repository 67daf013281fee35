// Package vocabulary saves, lists and removes bookmarked glossary words.
//
// The set of saved words per language is cached process-wide and dropped for
// a language on every mutation touching it; the next read repopulates it.
// A Service built without a repository reports empty reads and fails every
// mutation with domain.ErrNotConfigured.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

type wordRepo interface {
	GetByWord(ctx context.Context, word string, lang domain.Language) (*domain.SavedWord, error)
	ListByLanguage(ctx context.Context, lang domain.Language) ([]domain.SavedWord, error)
	WordsByLanguages(ctx context.Context, langs []domain.Language) (map[domain.Language][]string, error)
	Create(ctx context.Context, w domain.SavedWord) (*domain.SavedWord, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.WordKey, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) ([]domain.WordKey, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	MaxBulkDelete   = 500
)

// Service provides vocabulary operations.
type Service struct {
	words wordRepo
	tx    txManager
	cache *wordCache
	log   *slog.Logger
}

// NewService creates a vocabulary service. A nil words repository yields an
// unconfigured service.
func NewService(log *slog.Logger, words wordRepo, tx txManager) *Service {
	s := &Service{
		words: words,
		tx:    tx,
		log:   log.With("service", "vocabulary"),
	}
	if words != nil {
		s.cache = newWordCache(words)
	}
	return s
}

// Configured reports whether a persistence backend is attached.
func (s *Service) Configured() bool {
	return s.words != nil
}
