package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "quiz")
	if p := PurposeFrom(ctx); p != "quiz" {
		t.Fatalf("expected 'quiz', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "test-key"}},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig_PlaceholderKeyIsUnset(t *testing.T) {
	t.Setenv("MINDLAB_GEMINI_API_KEY", "")
	t.Setenv("MINDLAB_ANTHROPIC_API_KEY", "")
	t.Setenv("MINDLAB_OPENAI_API_KEY", "")
	t.Setenv("MINDLAB_OPENROUTER_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", placeholderKey)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("placeholder key must not count as configured")
	}
}

func TestDiscoverConfig_FindsGeminiKey(t *testing.T) {
	t.Setenv("MINDLAB_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "real-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "real-key" {
		t.Fatalf("unexpected key: %q", cfg.Gemini.APIKey)
	}
	if len(cfg.Gemini.Models) != 3 || cfg.Gemini.Models[0] != "gemini-2.0-flash" {
		t.Fatalf("unexpected model chain: %v", cfg.Gemini.Models)
	}
}

func TestConfigFromEnv_ModelChainOverride(t *testing.T) {
	t.Setenv("MINDLAB_GEMINI_MODELS", "gemini-2.5-pro, gemini-2.0-flash")

	cfg := ConfigFromEnv()
	want := []string{"gemini-2.5-pro", "gemini-2.0-flash"}
	if len(cfg.Gemini.Models) != len(want) {
		t.Fatalf("unexpected models: %v", cfg.Gemini.Models)
	}
	for i, m := range want {
		if cfg.Gemini.Models[i] != m {
			t.Fatalf("model %d: got %q, want %q", i, cfg.Gemini.Models[i], m)
		}
	}
}

func TestConfigFromEnv_TimeoutOverride(t *testing.T) {
	cfg := ConfigFromEnv()
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v, want 30s", cfg.Timeout)
	}

	t.Setenv("MINDLAB_LLM_TIMEOUT", "45s")
	cfg = ConfigFromEnv()
	if cfg.Timeout != 45*time.Second {
		t.Fatalf("timeout = %v, want 45s", cfg.Timeout)
	}

	// Unparseable or non-positive values keep the default.
	t.Setenv("MINDLAB_LLM_TIMEOUT", "soon")
	if cfg := ConfigFromEnv(); cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v, want default on bad value", cfg.Timeout)
	}
	t.Setenv("MINDLAB_LLM_TIMEOUT", "-1s")
	if cfg := ConfigFromEnv(); cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v, want default on negative value", cfg.Timeout)
	}
}
