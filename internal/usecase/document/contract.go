package document

import (
	"context"

	"github.com/kailas-cloud/vecsense/internal/domain"
	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
)

// Repository defines the storage contract for uploaded documents.
type Repository interface {
	Save(ctx context.Context, doc *domdoc.Document) error
	Get(ctx context.Context, id string) (domdoc.Document, error)
	List(ctx context.Context) ([]domdoc.Document, error)
}

// Embedder vectorizes document content.
type Embedder interface {
	Embed(ctx context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error)
}
