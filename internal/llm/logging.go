package llm

import (
	"context"
	"time"

	"github.com/mindlab/mindlab/internal/logger"
)

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, log: log.With("component", "llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []any{
		"purpose", purpose,
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if resp != nil {
		fields = append(fields,
			"served_by", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		l.log.Warn("llm request failed", fields...)
	} else {
		l.log.Info("llm request", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
