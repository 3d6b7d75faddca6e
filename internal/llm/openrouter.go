package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProviders creates providers targeting the OpenRouter API.
// OpenRouter exposes an OpenAI-compatible API, so the OpenAI SDK is reused.
func NewOpenRouterProviders(cfg OpenRouterConfig) ([]Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	models := cfg.Models
	if len(models) == 0 {
		models = DefaultConfig().OpenRouter.Models
	}

	return NewOpenAIProviders(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Models:  models,
		BaseURL: baseURL,
	})
}
