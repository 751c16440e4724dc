package health

import (
	"context"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ModelChecker checks the provider behind each routed embedding model.
type ModelChecker interface {
	Models() []domain.EmbeddingModel
	CheckModel(ctx context.Context, model domain.EmbeddingModel) error
}
