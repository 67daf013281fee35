// Package translate turns a translation request into a prompt, calls the
// model with bounded retries and validates what comes back.
package translate

import (
	"context"
	"log/slog"
	"time"
)

// Defaults used when a Config field is left zero.
const (
	DefaultMaxRetries          = 3
	DefaultRetryDelay          = time.Second
	DefaultTimeout             = 30 * time.Second
	DefaultMaxTextLength       = 10000
	DefaultMinCredentialLength = 20
)

// completer performs exactly one model call and returns the raw candidate
// text. Failures must be *domain.TranslationError values.
type completer interface {
	Complete(ctx context.Context, credential, prompt string) (string, error)
}

// credentialSource supplies the stored credential when the caller did not
// pass one.
type credentialSource interface {
	Credential(ctx context.Context) (string, error)
}

// Config bounds a translation call.
type Config struct {
	MaxRetries          int
	RetryDelay          time.Duration
	Timeout             time.Duration
	MaxTextLength       int
	MinCredentialLength int
}

func (c Config) withDefaults() Config {
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxTextLength <= 0 {
		c.MaxTextLength = DefaultMaxTextLength
	}
	if c.MinCredentialLength <= 0 {
		c.MinCredentialLength = DefaultMinCredentialLength
	}
	return c
}

// Service translates text through a model.
type Service struct {
	llm   completer
	creds credentialSource
	cfg   Config
	log   *slog.Logger
}

// NewService creates a translation Service. creds may be nil, in which case
// every call must carry its own credential.
func NewService(
	log *slog.Logger,
	llm completer,
	creds credentialSource,
	cfg Config,
) *Service {
	return &Service{
		llm:   llm,
		creds: creds,
		cfg:   cfg.withDefaults(),
		log:   log.With("service", "translate"),
	}
}

// MinCredentialLength reports the shortest credential the service accepts.
func (s *Service) MinCredentialLength() int { return s.cfg.MinCredentialLength }
