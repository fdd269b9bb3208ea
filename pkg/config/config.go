// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, providers, and pipeline tunables

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration. It is constructed once at
// process start and passed into the pipeline; core packages never read the
// environment themselves.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Email contains transactional email provider configuration
	Email EmailConfig

	// Summarizer contains text-generation provider configuration
	Summarizer SummarizerConfig

	// Pipeline contains capture pipeline tunables
	Pipeline PipelineConfig

	// LogFile, when set, routes logs to a rotating file instead of stdout
	LogFile string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeoutSeconds bounds each outbound HTTP call
	HTTPTimeoutSeconds int
}

// EmailConfig holds transactional email provider configuration
type EmailConfig struct {
	// APIKey is the Resend bearer token
	APIKey string

	// From is the sender identity, e.g. `Brief <brief@send-brief.com>`
	From string

	// Endpoint is the Resend send endpoint, overridable for tests
	Endpoint string
}

// SummarizerConfig holds text-generation provider configuration
type SummarizerConfig struct {
	// APIKey is the Gemini API key. Empty is allowed: summarization
	// degrades to unavailable rather than failing delivery.
	APIKey string

	// Model is the Gemini model name
	Model string

	// Endpoint is the generateContent base URL, overridable for tests
	Endpoint string
}

// PipelineConfig holds capture pipeline tunables
type PipelineConfig struct {
	// MinArticleChars is the normalized-text length below which
	// summarization falls back to title-only mode
	MinArticleChars int

	// MaxArticleChars caps normalized text to bound prompt size
	MaxArticleChars int
}

const (
	defaultResendEndpoint = "https://api.resend.com/emails"
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultFrom           = "Brief <brief@send-brief.com>"
)

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			HTTPTimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30),
		},
		Email: EmailConfig{
			APIKey:   os.Getenv("RESEND_API_KEY"),
			From:     getEnvOrDefault("EMAIL_FROM", defaultFrom),
			Endpoint: getEnvOrDefault("RESEND_ENDPOINT", defaultResendEndpoint),
		},
		Summarizer: SummarizerConfig{
			APIKey:   os.Getenv("GEMINI_API_KEY"),
			Model:    getEnvOrDefault("GEMINI_MODEL", defaultGeminiModel),
			Endpoint: getEnvOrDefault("GEMINI_ENDPOINT", defaultGeminiEndpoint),
		},
		Pipeline: PipelineConfig{
			MinArticleChars: getEnvAsIntOrDefault("MIN_ARTICLE_CHARS", 300),
			MaxArticleChars: getEnvAsIntOrDefault("MAX_ARTICLE_CHARS", 10000),
		},
		LogFile: os.Getenv("LOG_FILE"),
	}

	return cfg, nil
}

// Validate checks that the configuration is usable. A missing email
// credential is fatal; a missing summarizer credential is not, because
// summarization is a value-add rather than a hard dependency of delivery.
func (c *Config) Validate() error {
	if c.Email.APIKey == "" {
		return errors.New("RESEND_API_KEY is required")
	}
	if c.Email.From == "" {
		return errors.New("EMAIL_FROM must not be empty")
	}
	if c.Server.HTTPTimeoutSeconds <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.Pipeline.MinArticleChars < 0 || c.Pipeline.MaxArticleChars <= 0 {
		return errors.New("article character bounds must be positive")
	}
	if c.Pipeline.MinArticleChars >= c.Pipeline.MaxArticleChars {
		return errors.New("MIN_ARTICLE_CHARS must be below MAX_ARTICLE_CHARS")
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as an int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
