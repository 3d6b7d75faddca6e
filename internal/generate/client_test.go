package generate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mindlab/mindlab/internal/llm"
)

func TestClient_DisabledShortCircuits(t *testing.T) {
	c := NewClient(nil, 0)

	if c.Available() {
		t.Fatal("nil provider must report unavailable")
	}
	if _, ok := c.Call(context.Background(), "anything", structuredTemperature); ok {
		t.Fatal("disabled client must not return text")
	}
}

func TestClient_ReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("plain text reply")},
	)
	c := NewClient(mock, time.Second)

	text, ok := c.Call(context.Background(), "say something", chatTemperature)
	if !ok {
		t.Fatal("expected successful call")
	}
	if text != "plain text reply" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestClient_PassesTemperatureThrough(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("ok")},
	)
	c := NewClient(mock, time.Second)

	c.Call(context.Background(), "prompt", 0.9)

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Temperature != 0.9 {
		t.Fatalf("temperature not passed through: %v", mock.Calls[0].Temperature)
	}
	if mock.Calls[0].Messages[0].Content != "prompt" {
		t.Fatalf("prompt not passed through: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestClient_SwallowsProviderErrors(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("all models exhausted")}},
	)
	c := NewClient(mock, time.Second)

	if _, ok := c.Call(context.Background(), "prompt", structuredTemperature); ok {
		t.Fatal("provider error must map to ok=false")
	}
}

func TestClient_EmptyReplyIsAbsent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("")},
	)
	c := NewClient(mock, time.Second)

	if _, ok := c.Call(context.Background(), "prompt", structuredTemperature); ok {
		t.Fatal("empty reply must map to ok=false")
	}
}
