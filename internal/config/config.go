// Package config loads runtime settings from the environment with sane defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Config struct {
	// Search settings
	NewsAPIKey        string
	SourcesConfigPath string
	ResolveLinks      bool

	// Language model settings
	LLMProvider  string // "gemini" or "openai"
	GeminiAPIKey string
	OpenAIAPIKey string

	// Mail settings
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string

	// Article processing settings
	RequestTimeout  time.Duration
	UserAgent       string
	MinArticleChars int
	MaxArticles     int

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	// Optional .env file; OS environment wins when both are set.
	if err := gotenv.Load(); err != nil {
		slog.Debug("no .env file found, using OS environment")
	}

	cfg := &Config{
		SourcesConfigPath: "configs/sources.yaml",
		ResolveLinks:      true,
		LLMProvider:       "gemini",
		SMTPHost:          "smtp.gmail.com",
		SMTPPort:          587,
		RequestTimeout:    20 * time.Second,
		UserAgent:         defaultUserAgent,
		MinArticleChars:   250,
		MaxArticles:       25,
	}

	cfg.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.SenderEmail = os.Getenv("SENDER_EMAIL")
	cfg.SenderPassword = os.Getenv("SENDER_PASSWORD")

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLMProvider = provider
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		cfg.SMTPHost = host
	}
	cfg.SMTPPort = getEnvIntOrDefault("SMTP_PORT", cfg.SMTPPort)
	cfg.SourcesConfigPath = getEnvOrDefault("SOURCES_CONFIG_PATH", cfg.SourcesConfigPath)
	cfg.UserAgent = getEnvOrDefault("HTTP_USER_AGENT", cfg.UserAgent)

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("MIN_ARTICLE_CHARS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MinArticleChars = val
		}
	}
	if v := os.Getenv("MAX_ARTICLES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxArticles = val
		}
	}
	if v := os.Getenv("RESOLVE_LINKS"); v == "false" {
		cfg.ResolveLinks = false
	}
	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER is 'gemini'")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER is 'openai'")
		}
	default:
		return fmt.Errorf("LLM_PROVIDER must be 'gemini' or 'openai'")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port number")
	}
	return nil
}

// MailEnabled reports whether outbound email is configured. A missing
// credential disables mailing rather than failing the run.
func (c *Config) MailEnabled() bool {
	return c.SenderEmail != "" && c.SenderPassword != ""
}
