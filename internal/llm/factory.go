package llm

import (
	"context"
	"fmt"

	"github.com/mindlab/mindlab/internal/logger"
)

// NewProvider creates a Provider from configuration. The configured
// models form an ordered fallback chain, wrapped with logging and retry
// middleware: caller → retry → logging → chain → base providers.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	var providers []Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		providers, err = NewGeminiProviders(ctx, cfg.Gemini)
	case "anthropic":
		providers, err = NewAnthropicProviders(cfg.Anthropic)
	case "openai":
		providers, err = NewOpenAIProviders(cfg.OpenAI)
	case "openrouter":
		providers, err = NewOpenRouterProviders(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	chained := NewChain(providers...)
	logged := WithLogging(chained, log)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
