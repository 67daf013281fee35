package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	LLM        LLMConfig        `yaml:"llm"`
	Credential CredentialConfig `yaml:"credential"`
	Auth       AuthConfig       `yaml:"auth"`
	Realtime   RealtimeConfig   `yaml:"realtime"`
	Speech     SpeechConfig     `yaml:"speech"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN leaves
// the vocabulary store unconfigured.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return strings.TrimSpace(c.DSN) != "" }

// LLM providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// LLMConfig holds model access and translation call limits.
type LLMConfig struct {
	Provider            string        `yaml:"provider"              env:"LLM_PROVIDER"              env-default:"gemini"`
	BaseURL             string        `yaml:"base_url"              env:"LLM_BASE_URL"              env-default:"https://generativelanguage.googleapis.com/v1beta/models"`
	Model               string        `yaml:"model"                 env:"LLM_MODEL"                 env-default:"gemini-2.5-flash-preview-09-2025"`
	APIKey              string        `yaml:"api_key"               env:"LLM_API_KEY"`
	MaxRetries          int           `yaml:"max_retries"           env:"LLM_MAX_RETRIES"           env-default:"3"`
	RetryDelay          time.Duration `yaml:"retry_delay"           env:"LLM_RETRY_DELAY"           env-default:"1s"`
	Timeout             time.Duration `yaml:"timeout"               env:"LLM_TIMEOUT"               env-default:"30s"`
	MaxTextLength       int           `yaml:"max_text_length"       env:"LLM_MAX_TEXT_LENGTH"       env-default:"10000"`
	MinCredentialLength int           `yaml:"min_credential_length" env:"LLM_MIN_CREDENTIAL_LENGTH" env-default:"20"`
	AnthropicBaseURL    string        `yaml:"anthropic_base_url"    env:"LLM_ANTHROPIC_BASE_URL"`
	AnthropicModel      string        `yaml:"anthropic_model"       env:"LLM_ANTHROPIC_MODEL"       env-default:"claude-sonnet-4-5"`
	MaxTokens           int           `yaml:"max_tokens"            env:"LLM_MAX_TOKENS"            env-default:"4096"`
}

// CredentialConfig holds settings of the on-disk credential store.
type CredentialConfig struct {
	Path       string `yaml:"path"       env:"CREDENTIAL_PATH"       env-default:"./polyglot-credential"`
	Passphrase string `yaml:"passphrase" env:"CREDENTIAL_PASSPHRASE" env-default:"polyglot"`
}

// AuthConfig holds API token settings. An empty JWTSecret disables
// token checks.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"polyglot"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"720h"`
}

// Enabled reports whether API tokens are required.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// RealtimeConfig holds as-you-type translation settings.
type RealtimeConfig struct {
	Debounce    time.Duration `yaml:"debounce"     env:"REALTIME_DEBOUNCE"     env-default:"400ms"`
	MaxSessions int           `yaml:"max_sessions" env:"REALTIME_MAX_SESSIONS" env-default:"64"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled bool          `yaml:"enabled" env:"SPEECH_ENABLED" env-default:"false"`
	Command string        `yaml:"command" env:"SPEECH_COMMAND" env-default:"espeak-ng"`
	Rate    float64       `yaml:"rate"    env:"SPEECH_RATE"    env-default:"0.9"`
	Timeout time.Duration `yaml:"timeout" env:"SPEECH_TIMEOUT" env-default:"30s"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Translate int           `yaml:"translate" env:"RATELIMIT_TRANSLATE" env-default:"30"`
	Window    time.Duration `yaml:"window"    env:"RATELIMIT_WINDOW"    env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
