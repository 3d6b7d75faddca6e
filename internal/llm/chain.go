package llm

import (
	"context"
	"errors"
	"strings"
)

// ChainProvider tries an ordered list of providers until one succeeds.
// Each entry is typically the same backend configured with a different
// model ID, so an unsupported or exhausted model falls through to the
// next-preferred one. The first success wins; when every provider fails
// the last error is returned.
type ChainProvider struct {
	providers []Provider
}

// NewChain builds a ChainProvider. It panics if no providers are given,
// since an empty chain can never serve a request.
func NewChain(providers ...Provider) *ChainProvider {
	if len(providers) == 0 {
		panic("llm: NewChain requires at least one provider")
	}
	return &ChainProvider{providers: providers}
}

func (c *ChainProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for _, p := range c.providers {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// A canceled caller is not a model problem. Stop probing.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
	}
	return nil, lastErr
}

// ModelID returns the chain's model IDs joined in preference order.
func (c *ChainProvider) ModelID() string {
	ids := make([]string, len(c.providers))
	for i, p := range c.providers {
		ids[i] = p.ModelID()
	}
	return strings.Join(ids, ",")
}
