package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// placeholderKey is the value shipped in the sample env file. A key left
// at the placeholder counts as unset.
const placeholderKey = "your_api_key_here"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single generation request, model fallbacks and
	// retries included. The generation client enforces it per call.
	// Default: 30s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string

	// Models is the ordered fallback chain. The first model is tried
	// first; each subsequent entry is a progressively less-preferred
	// fallback.
	Models []string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Models []string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Models  []string
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Models  []string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Models: []string{"gemini-2.0-flash", "gemini-2.5-flash", "gemini-1.5-flash"},
		},
		Anthropic: AnthropicConfig{
			Models: []string{"claude-haiku"},
		},
		OpenAI: OpenAIConfig{
			Models: []string{"gpt-4o-mini"},
		},
		OpenRouter: OpenRouterConfig{
			Models: []string{"google/gemini-2.0-flash-exp"},
		},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("MINDLAB_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := cleanKey(os.Getenv("MINDLAB_GEMINI_API_KEY")); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("MINDLAB_GEMINI_MODELS"); m != "" {
		cfg.Gemini.Models = splitModels(m)
	}

	if k := cleanKey(os.Getenv("MINDLAB_ANTHROPIC_API_KEY")); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("MINDLAB_ANTHROPIC_MODELS"); m != "" {
		cfg.Anthropic.Models = splitModels(m)
	}

	if k := cleanKey(os.Getenv("MINDLAB_OPENAI_API_KEY")); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("MINDLAB_OPENAI_MODELS"); m != "" {
		cfg.OpenAI.Models = splitModels(m)
	}
	if u := os.Getenv("MINDLAB_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := cleanKey(os.Getenv("MINDLAB_OPENROUTER_API_KEY")); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("MINDLAB_OPENROUTER_MODELS"); m != "" {
		cfg.OpenRouter.Models = splitModels(m)
	}

	if t := os.Getenv("MINDLAB_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	if cfg.APIKey() != "" {
		return cfg, true
	}

	if k := cleanKey(os.Getenv("GEMINI_API_KEY")); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := cleanKey(os.Getenv("OPENAI_API_KEY")); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := cleanKey(os.Getenv("ANTHROPIC_API_KEY")); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := cleanKey(os.Getenv("OPENROUTER_API_KEY")); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// APIKey returns the key configured for the selected provider.
func (c Config) APIKey() string {
	switch c.Provider {
	case "gemini":
		return c.Gemini.APIKey
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "openrouter":
		return c.OpenRouter.APIKey
	}
	return ""
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("MINDLAB_GEMINI_API_KEY is required for the gemini provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MINDLAB_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("MINDLAB_OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("MINDLAB_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func cleanKey(k string) string {
	k = strings.TrimSpace(k)
	if k == placeholderKey {
		return ""
	}
	return k
}

func splitModels(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
