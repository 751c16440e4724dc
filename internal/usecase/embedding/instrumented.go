package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/metrics"
)

// InstrumentedEmbedder wraps an Embedder with a per-call deadline, request
// metrics and logging. Token usage is recorded by the transport.
type InstrumentedEmbedder struct {
	inner    domain.Embedder
	provider string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewInstrumentedEmbedder wraps inner. A zero timeout leaves the caller's
// deadline untouched.
func NewInstrumentedEmbedder(
	inner domain.Embedder, provider string, timeout time.Duration, logger *zap.Logger,
) *InstrumentedEmbedder {
	return &InstrumentedEmbedder{
		inner:    inner,
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Embed applies the deadline and delegates to the inner embedder.
func (p *InstrumentedEmbedder) Embed(
	ctx context.Context, text string, model domain.EmbeddingModel,
) (domain.Embedding, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()

	result, err := p.inner.Embed(ctx, text, model)

	duration := time.Since(start)
	metrics.EmbeddingRequestDuration.WithLabelValues(p.provider, string(model)).Observe(duration.Seconds())

	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(p.provider, string(model), "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(p.provider, string(model), errorType(err)).Inc()
		p.logger.Error("Embedding request failed",
			zap.String("provider", p.provider),
			zap.String("model", string(model)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return domain.Embedding{}, fmt.Errorf("embed: %w", err)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(p.provider, string(model), "success").Inc()
	p.logger.Debug("Embedding request completed",
		zap.String("provider", p.provider),
		zap.String("model", string(model)),
		zap.Duration("duration", duration),
		zap.Int("dimensions", result.Dimensions()),
	)

	return result, nil
}

// HealthCheck delegates when the inner embedder supports it.
func (p *InstrumentedEmbedder) HealthCheck(ctx context.Context) error {
	if hc, ok := p.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx) //nolint:wrapcheck // passthrough
	}
	return nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	default:
		return "provider"
	}
}
