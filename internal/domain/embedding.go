package domain

import (
	"context"
	"fmt"
)

// EmbeddingModel names a text embedding model.
type EmbeddingModel string

// Supported embedding models.
const (
	ModelSentenceBERT  EmbeddingModel = "sentence-bert"
	ModelBERT          EmbeddingModel = "bert"
	ModelWord2VecGloVe EmbeddingModel = "word2vec-glove"
	ModelGemini        EmbeddingModel = "gemini"
)

var allModels = []EmbeddingModel{ModelSentenceBERT, ModelBERT, ModelWord2VecGloVe, ModelGemini}

// AllEmbeddingModels returns every supported model in a fixed order.
func AllEmbeddingModels() []EmbeddingModel {
	out := make([]EmbeddingModel, len(allModels))
	copy(out, allModels)
	return out
}

// IsValid checks if the model is one of the supported names.
func (m EmbeddingModel) IsValid() bool {
	for _, known := range allModels {
		if m == known {
			return true
		}
	}
	return false
}

// ParseEmbeddingModel validates a model name.
func ParseEmbeddingModel(s string) (EmbeddingModel, error) {
	m := EmbeddingModel(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedModel, s)
	}
	return m, nil
}

// Embedding is a fixed-length vector produced for a text by a named model.
type Embedding struct {
	Vector []float64
	Model  EmbeddingModel
}

// Dimensions returns the vector length.
func (e Embedding) Dimensions() int { return len(e.Vector) }

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string, model EmbeddingModel) (Embedding, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbedAll embeds texts one by one with the same model. Identical texts are
// embedded again; there is no deduplication.
func EmbedAll(ctx context.Context, e Embedder, texts []string, model EmbeddingModel) ([]Embedding, error) {
	out := make([]Embedding, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text, model)
		if err != nil {
			return nil, fmt.Errorf("embed [%d]: %w", i, err)
		}
		out[i] = emb
	}
	return out, nil
}

// InstructionEmbedder prepends a fixed instruction to every text before embedding.
type InstructionEmbedder struct {
	inner       Embedder
	instruction string
}

// NewInstructionEmbedder creates a decorator that prepends instruction text.
func NewInstructionEmbedder(inner Embedder, instruction string) *InstructionEmbedder {
	return &InstructionEmbedder{inner: inner, instruction: instruction}
}

// Embed prepends instruction and delegates to inner embedder.
func (e *InstructionEmbedder) Embed(ctx context.Context, text string, model EmbeddingModel) (Embedding, error) {
	emb, err := e.inner.Embed(ctx, e.instruction+text, model)
	if err != nil {
		return Embedding{}, fmt.Errorf("instruction embed: %w", err)
	}
	return emb, nil
}
