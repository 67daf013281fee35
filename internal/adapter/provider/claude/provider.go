// Package claude serves translation prompts through the Anthropic Messages
// API. It is the alternative to the Gemini provider and honours the same
// single-attempt, classified-error contract.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

const (
	DefaultModel     = "claude-sonnet-4-5"
	DefaultMaxTokens = 4096
)

var errEmptyResponse = errors.New("response has no text block")

// Provider calls Claude with one user message per prompt.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// Config holds the Claude connection settings.
type Config struct {
	BaseURL   string
	Model     string
	MaxTokens int
}

// NewProvider creates a Provider. The SDK's own retries are disabled; the
// translation service owns the retry policy.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &Provider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		log:       logger.With("adapter", "claude"),
	}
}

// Complete sends prompt and returns the JSON object found in the reply.
func (p *Provider) Complete(ctx context.Context, credential, prompt string) (string, error) {
	p.log.DebugContext(ctx, "claude request",
		slog.String("model", p.model),
		slog.Int("prompt_bytes", len(prompt)),
	)

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}, option.WithAPIKey(credential))
	if err != nil {
		return "", classify(err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return "", domain.NewTranslationError(domain.ErrorKindInvalidResponse, 0, fmt.Errorf("claude: %w", errEmptyResponse))
	}

	p.log.DebugContext(ctx, "claude response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("text_bytes", len(text)),
	)

	return extractJSON(text), nil
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return domain.NewTranslationError(domain.ErrorKindNetwork, 0, fmt.Errorf("claude: %w", err))
	}

	cause := fmt.Errorf("claude: unexpected status %d: %w", apiErr.StatusCode, err)
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return domain.NewTranslationError(domain.ErrorKindAuth, apiErr.StatusCode, cause)
	case http.StatusTooManyRequests:
		return domain.NewTranslationError(domain.ErrorKindRateLimited, apiErr.StatusCode, cause)
	default:
		return domain.NewTranslationError(domain.ErrorKindRequestFailed, apiErr.StatusCode, cause)
	}
}

// extractJSON returns the outermost {...} span of s, or s unchanged when
// there is none so that parsing reports the problem.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}
