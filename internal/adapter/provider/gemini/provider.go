package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-2.5-flash-preview-09-2025"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 512
)

var errMalformedEnvelope = errors.New("response has no candidate text")

// Provider calls the Gemini generateContent endpoint.
type Provider struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for model with the public Gemini API URL.
func NewProvider(model string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(DefaultBaseURL, model, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, model string, logger *slog.Logger) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		log:        logger.With("adapter", "gemini"),
	}
}

// Complete sends one generateContent request and returns the text of the
// first candidate. It never retries; failures are *domain.TranslationError.
func (p *Provider) Complete(ctx context.Context, credential, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	reqURL := p.baseURL + "/" + url.PathEscape(p.model) + ":generateContent?key=" + url.QueryEscape(credential)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "gemini request",
		slog.String("model", p.model),
		slog.Int("prompt_bytes", len(prompt)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", domain.NewTranslationError(domain.ErrorKindNetwork, 0, fmt.Errorf("gemini: %w", stripKey(err)))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		p.log.WarnContext(ctx, "gemini non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return "", statusError(resp.StatusCode, snippet)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewTranslationError(domain.ErrorKindNetwork, 0, fmt.Errorf("gemini: read body: %w", err))
	}

	var envelope generateResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", domain.NewTranslationError(domain.ErrorKindInvalidResponse, 0, fmt.Errorf("gemini: decode envelope: %w", err))
	}

	text, ok := envelope.firstText()
	if !ok {
		return "", domain.NewTranslationError(domain.ErrorKindInvalidResponse, 0, fmt.Errorf("gemini: %w", errMalformedEnvelope))
	}

	p.log.DebugContext(ctx, "gemini response",
		slog.Int("status", resp.StatusCode),
		slog.Int("text_bytes", len(text)),
	)

	return text, nil
}

func statusError(status int, body []byte) error {
	cause := fmt.Errorf("gemini: unexpected status %d: %s", status, strings.TrimSpace(string(body)))
	switch status {
	case http.StatusUnauthorized:
		return domain.NewTranslationError(domain.ErrorKindAuth, status, cause)
	case http.StatusTooManyRequests:
		return domain.NewTranslationError(domain.ErrorKindRateLimited, status, cause)
	default:
		return domain.NewTranslationError(domain.ErrorKindRequestFailed, status, cause)
	}
}

// stripKey drops the request URL from transport errors so the credential
// in the query string does not end up in logs.
func stripKey(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
