package generate

import (
	"context"
	"encoding/json"

	"github.com/mindlab/mindlab/internal/logger"
)

// Service bundles all content generators behind one value. Generators
// are independent of each other; they share only the Client. Service is
// safe for concurrent use: the fallback tables are read-only and no
// per-call state is kept.
type Service struct {
	client *Client
	log    *logger.Logger
}

// NewService creates a Service. The client decides whether the AI path
// is attempted; with a disabled client every call serves fallback content.
func NewService(client *Client, log *logger.Logger) *Service {
	return &Service{
		client: client,
		log:    log.With("component", "generate"),
	}
}

// Available reports whether the AI path is enabled.
func (s *Service) Available() bool {
	return s.client.Available()
}

// Activities produces the full activity bundle for a topic, as served by
// the concept playground.
func (s *Service) Activities(ctx context.Context, topic string) ActivityBundle {
	return ActivityBundle{
		DragDrop:    s.DragDrop(ctx, topic),
		FillBlanks:  s.FillBlanks(ctx, topic),
		Flashcards:  s.Flashcards(ctx, topic),
		Quiz:        s.Quiz(ctx, topic),
		ConceptFlow: s.ConceptFlow(ctx, topic),
	}
}

// fallback logs that a generator served template content. Provider errors
// were already logged by the llm middleware; this records the consequence.
func (s *Service) fallback(kind, topic string) {
	s.log.Debug("serving fallback content", "kind", kind, "topic", topic)
}

// attemptJSON runs the AI half of the pipeline for a structured payload:
// call the provider, extract the JSON, unmarshal into T. Any failure at
// any stage reports false and the caller serves its fallback. A payload
// that unmarshals is returned as-is; the prompt spells out the required
// shape and the parsed result is trusted beyond that.
func attemptJSON[T any](ctx context.Context, c *Client, prompt string) (T, bool) {
	var out T

	text, ok := c.Call(ctx, prompt, structuredTemperature)
	if !ok {
		return out, false
	}

	raw, ok := ExtractJSON(text)
	if !ok {
		return out, false
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}
