package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/polyglot-backend/internal/adapter/postgres"
	vocabrepo "github.com/heartmarshall/polyglot-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/polyglot-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/polyglot-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/polyglot-backend/internal/adapter/speech"
	"github.com/heartmarshall/polyglot-backend/internal/auth"
	"github.com/heartmarshall/polyglot-backend/internal/config"
	"github.com/heartmarshall/polyglot-backend/internal/credential"
	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/translate"
	"github.com/heartmarshall/polyglot-backend/internal/service/vocabulary"
)

// Deps are the services built from configuration. The server and the CLI
// share them.
type Deps struct {
	Config      *config.Config
	Log         *slog.Logger
	Pool        *pgxpool.Pool // nil without a database DSN
	Credentials *credential.FileStore
	Resolver    *credential.Resolver
	Translate   *translate.Service
	Vocabulary  *vocabulary.Service
	Speaker     *speech.Speaker    // nil when speech is disabled
	Tokens      *auth.TokenManager // nil when API auth is disabled
}

// Build creates every service cfg asks for. The caller must Close the result.
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Deps, error) {
	d := &Deps{Config: cfg, Log: log}

	if cfg.Database.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		d.Pool = pool
		d.Vocabulary = vocabulary.NewService(log, vocabrepo.New(pool), postgres.NewTxManager(pool))
	} else {
		log.WarnContext(ctx, "database not configured; vocabulary is read-only and empty")
		d.Vocabulary = vocabulary.NewService(log, nil, nil)
	}

	d.Credentials = credential.NewFileStore(cfg.Credential.Path, cfg.Credential.Passphrase, cfg.LLM.MinCredentialLength)
	d.Resolver = credential.NewResolver(cfg.LLM.APIKey, d.Credentials)

	d.Translate = translate.NewService(log, newCompleter(cfg.LLM, log), d.Resolver, translate.Config{
		MaxRetries:          cfg.LLM.MaxRetries,
		RetryDelay:          cfg.LLM.RetryDelay,
		Timeout:             cfg.LLM.Timeout,
		MaxTextLength:       cfg.LLM.MaxTextLength,
		MinCredentialLength: cfg.LLM.MinCredentialLength,
	})

	if cfg.Speech.Enabled {
		d.Speaker = speech.NewSpeaker(speech.NewCmdRunner(), cfg.Speech.Command, cfg.Speech.Rate, log,
			speech.WithTimeout(cfg.Speech.Timeout),
			speech.WithErrorHandler(func(text string, lang domain.Language, err error) {
				log.Warn("speech playback failed",
					slog.String("language", lang.String()),
					slog.Int("length", len(text)),
					slog.String("error", err.Error()),
				)
			}),
		)
	}

	if cfg.Auth.Enabled() {
		d.Tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	}

	return d, nil
}

// Close releases the database pool.
func (d *Deps) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

type completer interface {
	Complete(ctx context.Context, credential, prompt string) (string, error)
}

func newCompleter(cfg config.LLMConfig, log *slog.Logger) completer {
	if cfg.Provider == config.ProviderAnthropic {
		return claude.NewProvider(claude.Config{
			BaseURL:   cfg.AnthropicBaseURL,
			Model:     cfg.AnthropicModel,
			MaxTokens: cfg.MaxTokens,
		}, log)
	}
	return gemini.NewProviderWithURL(cfg.BaseURL, cfg.Model, log)
}
