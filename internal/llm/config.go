package llm

import (
	"os"
	"time"
)

// Config selects and configures the backend that generates feedback text.
type Config struct {
	// Provider names the backend: "anthropic", "openai", "openrouter",
	// "gemini", or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional override for OpenAI-compatible servers
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied to transient provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheapest reasonable model per backend. A feedback
// line is a couple of sentences, so small fast models are the right default.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers MATHTUTOR_* environment variables over the defaults.
// Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for key, dst := range map[string]*string{
		"MATHTUTOR_LLM_PROVIDER":       &cfg.Provider,
		"MATHTUTOR_ANTHROPIC_API_KEY":  &cfg.Anthropic.APIKey,
		"MATHTUTOR_ANTHROPIC_MODEL":    &cfg.Anthropic.Model,
		"MATHTUTOR_OPENAI_API_KEY":     &cfg.OpenAI.APIKey,
		"MATHTUTOR_OPENAI_MODEL":       &cfg.OpenAI.Model,
		"MATHTUTOR_OPENAI_BASE_URL":    &cfg.OpenAI.BaseURL,
		"MATHTUTOR_GEMINI_API_KEY":     &cfg.Gemini.APIKey,
		"MATHTUTOR_GEMINI_MODEL":       &cfg.Gemini.Model,
		"MATHTUTOR_OPENROUTER_API_KEY": &cfg.OpenRouter.APIKey,
		"MATHTUTOR_OPENROUTER_MODEL":   &cfg.OpenRouter.Model,
	} {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	return cfg
}
