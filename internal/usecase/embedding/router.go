// Package embedding composes embedding providers: per-model routing,
// deadlines, observability and circuit breaking.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// Router dispatches each request to the provider registered for its model.
type Router struct {
	mu        sync.RWMutex
	providers map[domain.EmbeddingModel]domain.Embedder
	logger    *zap.Logger
}

// NewRouter creates an empty router.
func NewRouter(logger *zap.Logger) *Router {
	return &Router{providers: make(map[domain.EmbeddingModel]domain.Embedder), logger: logger}
}

// Register binds model to e, replacing any previous binding.
func (r *Router) Register(model domain.EmbeddingModel, e domain.Embedder) error {
	if !model.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedModel, model)
	}
	r.mu.Lock()
	r.providers[model] = e
	r.mu.Unlock()
	return nil
}

// Models returns the routable models in canonical order.
func (r *Router) Models() []domain.EmbeddingModel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.EmbeddingModel
	for _, m := range domain.AllEmbeddingModels() {
		if _, ok := r.providers[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Embed vectorizes text with the provider for model. Unknown or unrouted
// models fail with ErrUnsupportedModel; provider failures and empty vectors
// with ErrEmbeddingFailure.
func (r *Router) Embed(ctx context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error) {
	r.mu.RLock()
	p, ok := r.providers[model]
	r.mu.RUnlock()
	if !ok {
		return domain.Embedding{}, &domain.ModelError{Model: model, Err: domain.ErrUnsupportedModel}
	}

	emb, err := p.Embed(ctx, text, model)
	if err != nil {
		if !errors.Is(err, domain.ErrEmbeddingFailure) {
			err = fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
		}
		return domain.Embedding{}, &domain.ModelError{Model: model, Err: err}
	}
	if len(emb.Vector) == 0 {
		return domain.Embedding{}, &domain.ModelError{
			Model: model,
			Err:   fmt.Errorf("%w: provider returned an empty vector", domain.ErrEmbeddingFailure),
		}
	}
	emb.Model = model
	return emb, nil
}

// HealthCheck probes every provider that supports it.
func (r *Router) HealthCheck(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for m, p := range r.providers {
		hc, ok := p.(domain.HealthChecker)
		if !ok {
			continue
		}
		if err := hc.HealthCheck(ctx); err != nil {
			r.logger.Warn("Embedding provider unhealthy", zap.String("model", string(m)), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", m, err))
		}
	}
	return errors.Join(errs...)
}

// CheckModel probes the provider bound to model. Providers without a health
// check are assumed healthy.
func (r *Router) CheckModel(ctx context.Context, model domain.EmbeddingModel) error {
	r.mu.RLock()
	p, ok := r.providers[model]
	r.mu.RUnlock()
	if !ok {
		return &domain.ModelError{Model: model, Err: domain.ErrUnsupportedModel}
	}
	hc, ok := p.(domain.HealthChecker)
	if !ok {
		return nil
	}
	if err := hc.HealthCheck(ctx); err != nil {
		return &domain.ModelError{Model: model, Err: err}
	}
	return nil
}
