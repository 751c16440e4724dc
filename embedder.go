package vecsense

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// Embedder converts text to a vector for the named model. Every call for
// one model must return vectors of the same length.
type Embedder interface {
	Embed(ctx context.Context, text string, model Model) ([]float64, error)
}

// EmbedderFunc adapts a function to Embedder.
type EmbedderFunc func(ctx context.Context, text string, model Model) ([]float64, error)

// Embed calls f.
func (f EmbedderFunc) Embed(ctx context.Context, text string, model Model) ([]float64, error) {
	return f(ctx, text, model)
}

// embedderAdapter wraps a public Embedder to satisfy domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error) {
	v, err := a.inner.Embed(ctx, text, model)
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("embed: %w", err)
	}
	return domain.Embedding{Vector: v, Model: model}, nil
}
