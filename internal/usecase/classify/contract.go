package classify

import (
	"context"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// Embedder vectorizes text with a named model.
type Embedder interface {
	Embed(ctx context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error)
}
