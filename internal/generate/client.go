// Package generate implements the MindLab content generation pipeline.
//
// Every generator follows the same dual strategy: compose a prompt, try
// the LLM provider, extract and parse the reply, and on any failure fall
// back to deterministic topic-keyed template content. The public surface
// is total — generators always return a usable value and never an error.
package generate

import (
	"context"
	"time"

	"github.com/mindlab/mindlab/internal/llm"
)

const (
	// maxTokens is the response budget for a single generation.
	maxTokens = 2048

	// structuredTemperature is used for activity and insight generation.
	structuredTemperature = 0.7

	// chatTemperature is used for conversational replies.
	chatTemperature = 0.9
)

// Client wraps the provider layer for the generators. A nil provider
// means AI generation is permanently disabled; Call then short-circuits
// without any I/O and every generator serves fallback content.
type Client struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewClient creates a Client. Pass a nil provider to disable the AI path.
func NewClient(provider llm.Provider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{provider: provider, timeout: timeout}
}

// Available reports whether the AI path can be attempted at all.
func (c *Client) Available() bool {
	return c != nil && c.provider != nil
}

// Call sends a single-turn prompt to the provider and returns the raw
// reply text. The second return value is false on any failure: provider
// disabled, timeout, exhausted model chain, empty reply. Errors never
// escape this boundary.
func (c *Client) Call(ctx context.Context, prompt string, temperature float64) (string, bool) {
	if !c.Available() {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil || resp == nil || len(resp.Content) == 0 {
		return "", false
	}
	return string(resp.Content), true
}
