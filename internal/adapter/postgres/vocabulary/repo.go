// Package vocabulary implements the saved-word repository using PostgreSQL.
// At most one row exists per (word, language).
package vocabulary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/polyglot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

const table = "vocabulary"

var columns = []string{"id", "word", "meaning", "pronunciation", "language", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides saved-word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new vocabulary repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWord returns the saved word for (word, language).
// Returns domain.ErrNotFound if it is not saved.
func (r *Repo) GetByWord(ctx context.Context, word string, lang domain.Language) (*domain.SavedWord, error) {
	query := psql.Select(columns...).
		From(table).
		Where("word = ?", word).
		Where("language = ?", string(lang))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, word+"/"+string(lang))
	}
	return w, nil
}

// GetByID returns a saved word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedWord, error) {
	sql, args, err := psql.Select(columns...).From(table).Where("id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, id.String())
	}
	return w, nil
}

// ListByLanguage returns every saved word of lang, newest first.
func (r *Repo) ListByLanguage(ctx context.Context, lang domain.Language) ([]domain.SavedWord, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where("language = ?", string(lang)).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	words := []domain.SavedWord{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return words, nil
}

// WordsByLanguages returns the saved words of each requested language. Every
// requested language is present in the result, possibly with no words.
func (r *Repo) WordsByLanguages(ctx context.Context, langs []domain.Language) (map[domain.Language][]string, error) {
	keys := make([]string, len(langs))
	out := make(map[domain.Language][]string, len(langs))
	for i, l := range langs {
		keys[i] = string(l)
		out[l] = []string{}
	}

	sql, args, err := psql.Select("language", "word").
		From(table).
		Where(sq.Eq{"language": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s words: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lang, word string
		if err := rows.Scan(&lang, &word); err != nil {
			return nil, fmt.Errorf("scan %s word: %w", table, err)
		}
		l := domain.Language(lang)
		out[l] = append(out[l], word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s words: %w", table, err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts w and returns the stored row. A zero ID or CreatedAt is
// filled in. Returns domain.ErrAlreadyExists if (word, language) is taken.
func (r *Repo) Create(ctx context.Context, w domain.SavedWord) (*domain.SavedWord, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(w.ID, w.Word, w.Meaning, w.Pronunciation, string(w.Language), w.CreatedAt).
		Suffix("RETURNING id, word, meaning, pronunciation, language, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanWord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, w.Word+"/"+string(w.Language))
	}
	return saved, nil
}

// Delete removes a saved word and returns its key.
// Returns domain.ErrNotFound if no row has that id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (domain.WordKey, error) {
	sql, args, err := psql.Delete(table).
		Where("id = ?", id).
		Suffix("RETURNING word, language").
		ToSql()
	if err != nil {
		return domain.WordKey{}, fmt.Errorf("build query: %w", err)
	}

	var word, lang string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&word, &lang); err != nil {
		return domain.WordKey{}, postgres.MapError(err, table, id.String())
	}
	return domain.WordKey{Word: word, Language: domain.Language(lang)}, nil
}

// DeleteMany removes every listed id that exists and returns the keys of the
// removed rows. Unknown ids are ignored.
func (r *Repo) DeleteMany(ctx context.Context, ids []uuid.UUID) ([]domain.WordKey, error) {
	keys := []domain.WordKey{}
	if len(ids) == 0 {
		return keys, nil
	}

	sql, args, err := psql.Delete(table).
		Where(sq.Eq{"id": ids}).
		Suffix("RETURNING word, language").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var word, lang string
		if err := rows.Scan(&word, &lang); err != nil {
			return nil, fmt.Errorf("scan deleted %s: %w", table, err)
		}
		keys = append(keys, domain.WordKey{Word: word, Language: domain.Language(lang)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("delete %s: %w", table, err)
	}
	return keys, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.SavedWord, error) {
	var (
		w    domain.SavedWord
		lang string
	)
	if err := row.Scan(&w.ID, &w.Word, &w.Meaning, &w.Pronunciation, &lang, &w.CreatedAt); err != nil {
		return nil, err
	}
	w.Language = domain.Language(lang)
	return &w, nil
}
