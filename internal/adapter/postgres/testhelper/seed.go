package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueWord returns base with a random suffix so parallel tests sharing
// the container never collide on (word, language).
func UniqueWord(base string) string {
	return base + "-" + uniqueSuffix()
}

// SeedWord inserts a saved word with a unique spelling derived from base.
// Returns the stored row.
func SeedWord(t *testing.T, pool *pgxpool.Pool, base string, lang domain.Language) domain.SavedWord {
	t.Helper()

	w := domain.SavedWord{
		ID:        uuid.New(),
		Word:      UniqueWord(base),
		Meaning:   "meaning of " + base,
		Language:  lang,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary (id, word, meaning, pronunciation, language, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.Word, w.Meaning, w.Pronunciation, string(w.Language), w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}
	return w
}
