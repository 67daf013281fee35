package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.Enabled() && c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if c.Realtime.Debounce < 0 {
		return fmt.Errorf("realtime.debounce must be >= 0 (got %s)", c.Realtime.Debounce)
	}
	if c.Realtime.MaxSessions < 1 {
		return fmt.Errorf("realtime.max_sessions must be >= 1 (got %d)", c.Realtime.MaxSessions)
	}

	if c.Speech.Rate <= 0 {
		return fmt.Errorf("speech.rate must be > 0 (got %v)", c.Speech.Rate)
	}
	if c.Speech.Timeout <= 0 {
		return fmt.Errorf("speech.timeout must be > 0 (got %s)", c.Speech.Timeout)
	}
	if c.Speech.Enabled && c.Speech.Command == "" {
		return fmt.Errorf("speech.command is required when speech is enabled")
	}

	if c.RateLimit.Translate < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit: translate and window must be positive")
	}

	if c.Credential.Path == "" {
		return fmt.Errorf("credential.path is required")
	}

	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderGemini, ProviderAnthropic, l.Provider)
	}
	if l.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be >= 1 (got %d)", l.MaxRetries)
	}
	if l.RetryDelay <= 0 {
		return fmt.Errorf("retry_delay must be > 0 (got %s)", l.RetryDelay)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	if l.MaxTextLength < 1 {
		return fmt.Errorf("max_text_length must be >= 1 (got %d)", l.MaxTextLength)
	}
	if l.MinCredentialLength < 1 {
		return fmt.Errorf("min_credential_length must be >= 1 (got %d)", l.MinCredentialLength)
	}
	if l.APIKey != "" && len(l.APIKey) < l.MinCredentialLength {
		return fmt.Errorf("api_key must be at least %d characters (got %d)", l.MinCredentialLength, len(l.APIKey))
	}
	return nil
}
