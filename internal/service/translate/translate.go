package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

// Translate validates in, calls the model and returns the validated result.
//
// Network failures and rate limiting are retried up to MaxRetries attempts
// in total, waiting RetryDelay*n before the n-th retry. An exhausted rate
// limit is reported as request_failed with status 429. Every other failure
// is returned from the attempt it happened in.
func (s *Service) Translate(ctx context.Context, in TranslateInput) (*domain.TranslationResult, error) {
	if err := in.Validate(s.cfg.MaxTextLength); err != nil {
		return nil, err
	}

	cred, err := s.credential(ctx, in.Credential)
	if err != nil {
		return nil, err
	}

	req := in.Request()
	prompt := BuildPrompt(req)

	var (
		payload  string
		attempts int
	)
	backoff := retry.WithMaxRetries(uint64(s.cfg.MaxRetries-1), linearBackoff(s.cfg.RetryDelay))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		out, err := s.attempt(ctx, cred, prompt)
		if err == nil {
			payload = out
			return nil
		}

		var te *domain.TranslationError
		if errors.As(err, &te) && te.Retryable() {
			s.log.WarnContext(ctx, "translation attempt failed",
				slog.Int("attempt", attempts),
				slog.String("kind", te.Kind.String()),
				slog.Int("status", te.Status),
			)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		err = exhausted(err)
		kind, _ := domain.KindOf(err)
		s.log.ErrorContext(ctx, "translation failed",
			slog.Int("attempts", attempts),
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	result, skipped, err := parseResult(payload)
	if err != nil {
		s.log.ErrorContext(ctx, "translation result rejected",
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	for _, reason := range skipped {
		s.log.WarnContext(ctx, "glossary entry dropped", slog.String("reason", reason.Error()))
	}

	s.log.InfoContext(ctx, "translated",
		slog.String("source", req.Source.String()),
		slog.String("target", req.Target.String()),
		slog.String("detected", result.DetectedSource.String()),
		slog.Int("glossary", len(result.WordGuide)),
		slog.Int("attempts", attempts),
	)

	return result, nil
}

// attempt performs one bounded model call.
func (s *Service) attempt(ctx context.Context, cred, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	out, err := s.llm.Complete(callCtx, cred, prompt)
	if err == nil {
		return out, nil
	}

	var te *domain.TranslationError
	if errors.As(err, &te) {
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	// Unclassified failures (including the per-call timeout) are transport
	// problems as far as the caller is concerned.
	return "", domain.NewTranslationError(domain.ErrorKindNetwork, 0, err)
}

// credential picks the credential for a call and checks its length.
func (s *Service) credential(ctx context.Context, explicit string) (string, error) {
	cred := strings.TrimSpace(explicit)
	if cred == "" && s.creds != nil {
		stored, err := s.creds.Credential(ctx)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("load credential: %w", err)
		}
		cred = strings.TrimSpace(stored)
	}

	if cred == "" {
		return "", domain.NewValidationError("credential", "required")
	}
	if len(cred) < s.cfg.MinCredentialLength {
		return "", domain.NewValidationError("credential",
			fmt.Sprintf("must be at least %d characters", s.cfg.MinCredentialLength))
	}
	return cred, nil
}

// exhausted converts a rate limit that outlived every retry into a plain
// request failure.
func exhausted(err error) error {
	var te *domain.TranslationError
	if errors.As(err, &te) && te.Kind == domain.ErrorKindRateLimited {
		return domain.NewTranslationError(domain.ErrorKindRequestFailed, http.StatusTooManyRequests, te.Err)
	}
	return err
}

// linearBackoff waits base, 2*base, 3*base, ... between attempts.
func linearBackoff(base time.Duration) retry.Backoff {
	var n int64
	return retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return time.Duration(n) * base, false
	})
}
