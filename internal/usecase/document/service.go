// Package document stores uploaded documents together with the embedding of their content.
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
)

// Service handles document upload with automatic vectorization.
// A nil repository means persistence is not configured.
type Service struct {
	repo   Repository
	embed  Embedder
	model  domain.EmbeddingModel
	logger *zap.Logger

	now   func() time.Time
	newID func() string
}

// New creates a document service that embeds content with model.
func New(repo Repository, embed Embedder, model domain.EmbeddingModel, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		embed:  embed,
		model:  model,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Enabled reports whether a storage backend is configured.
func (s *Service) Enabled() bool { return s.repo != nil }

// Create validates, embeds and stores a document.
func (s *Service) Create(ctx context.Context, title, content string) (domdoc.Document, error) {
	if s.repo == nil {
		return domdoc.Document{}, fmt.Errorf("document storage: %w", domain.ErrNotImplemented)
	}

	doc, err := domdoc.New(s.newID(), title, content, s.now())
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("validate document: %w", err)
	}

	emb, err := s.embed.Embed(ctx, doc.Content(), s.model)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("vectorize document: %w", err)
	}
	doc.SetEmbedding(emb)

	if err := s.repo.Save(ctx, &doc); err != nil {
		return domdoc.Document{}, fmt.Errorf("save document: %w", err)
	}

	s.logger.Info("Document stored",
		zap.String("id", doc.ID()),
		zap.String("model", string(emb.Model)),
		zap.Int("dimensions", emb.Dimensions()),
	)
	return doc, nil
}

// Get returns a stored document by id.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	if s.repo == nil {
		return domdoc.Document{}, fmt.Errorf("document storage: %w", domain.ErrNotImplemented)
	}
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// List returns stored documents, newest first.
func (s *Service) List(ctx context.Context) ([]domdoc.Document, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("document storage: %w", domain.ErrNotImplemented)
	}
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
