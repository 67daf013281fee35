package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/polyglot-backend/internal/app"
	"github.com/heartmarshall/polyglot-backend/internal/auth"
	"github.com/heartmarshall/polyglot-backend/internal/config"
	"github.com/heartmarshall/polyglot-backend/migrations"
)

// loader builds the real dependencies of each command from configuration.
type loader struct {
	path string
}

func (l *loader) config() (*config.Config, error) {
	if l.path == "" {
		return config.Load()
	}
	return config.LoadFrom(l.path)
}

func (l *loader) build(ctx context.Context) (*app.Deps, error) {
	cfg, err := l.config()
	if err != nil {
		return nil, err
	}
	return app.Build(ctx, cfg, app.NewLogger(cfg.Log))
}

func (l *loader) serve(ctx context.Context) error {
	cfg, err := l.config()
	if err != nil {
		return err
	}
	return app.Serve(ctx, cfg, app.NewLogger(cfg.Log))
}

func (l *loader) translation(ctx context.Context) (*translation, func(), error) {
	d, err := l.build(ctx)
	if err != nil {
		return nil, nil, err
	}
	t := &translation{translator: d.Translate, saved: d.Vocabulary}
	if d.Speaker != nil {
		t.speaker = d.Speaker
	}
	return t, d.Close, nil
}

func (l *loader) vocabulary(ctx context.Context) (vocabularyStore, func(), error) {
	d, err := l.build(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !d.Vocabulary.Configured() {
		d.Close()
		return nil, nil, errors.New("vocabulary needs a database: set DATABASE_DSN")
	}
	return d.Vocabulary, d.Close, nil
}

func (l *loader) credentials(ctx context.Context) (credentialStore, func(), error) {
	d, err := l.build(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &credentials{FileStore: d.Credentials, resolver: d.Resolver}, d.Close, nil
}

func (l *loader) tokens(context.Context) (tokenIssuer, error) {
	cfg, err := l.config()
	if err != nil {
		return nil, err
	}
	if !cfg.Auth.Enabled() {
		return nil, errors.New("API tokens are disabled: set AUTH_JWT_SECRET")
	}
	return auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL), nil
}

func (l *loader) migrations(ctx context.Context) (migrator, func(), error) {
	cfg, err := l.config()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Database.Enabled() {
		return nil, nil, errors.New("migrations need a database: set DATABASE_DSN")
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Warn("close migration db", slog.String("error", err.Error()))
		}
	}
	return provider, closeDB, nil
}
