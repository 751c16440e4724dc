package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/metrics"
)

// ErrCircuitOpen signals that the provider breaker rejected the call.
var ErrCircuitOpen = errors.New("embedding circuit open")

// BreakerConfig tunes a provider circuit breaker.
type BreakerConfig struct {
	MinRequests      uint32
	FailureRatio     float64
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
}

// DefaultBreakerConfig trips at 50% failures over at least 5 calls and
// probes again after 30s.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MinRequests:      5,
		FailureRatio:     0.5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxCalls: 1,
	}
}

// BreakerEmbedder stops calling a failing remote provider until it
// recovers. Caller cancellations do not count as failures.
type BreakerEmbedder struct {
	inner domain.Embedder
	cb    *gobreaker.CircuitBreaker[domain.Embedding]
}

// NewBreakerEmbedder wraps inner with a breaker named after model.
func NewBreakerEmbedder(
	inner domain.Embedder, model domain.EmbeddingModel, cfg BreakerConfig, logger *zap.Logger,
) *BreakerEmbedder {
	metrics.EmbeddingBreakerState.WithLabelValues(string(model)).Set(float64(gobreaker.StateClosed))
	settings := gobreaker.Settings{
		Name:        string(model),
		MaxRequests: cfg.HalfOpenMaxCalls,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.EmbeddingBreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("Embedding circuit breaker state change",
				zap.String("model", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &BreakerEmbedder{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[domain.Embedding](settings),
	}
}

// Embed runs the inner call through the breaker.
func (b *BreakerEmbedder) Embed(ctx context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error) {
	emb, err := b.cb.Execute(func() (domain.Embedding, error) {
		return b.inner.Embed(ctx, text, model)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.Embedding{}, fmt.Errorf("%w: %w: %w", domain.ErrEmbeddingFailure, ErrCircuitOpen, err)
	}
	if err != nil {
		return domain.Embedding{}, err //nolint:wrapcheck // inner error already wrapped
	}
	return emb, nil
}

// State returns the current breaker state.
func (b *BreakerEmbedder) State() gobreaker.State { return b.cb.State() }

// HealthCheck delegates when the inner embedder supports it.
func (b *BreakerEmbedder) HealthCheck(ctx context.Context) error {
	if hc, ok := b.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx) //nolint:wrapcheck // passthrough
	}
	return nil
}
