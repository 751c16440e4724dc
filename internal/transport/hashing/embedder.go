// Package hashing is a local, deterministic embedding provider: every word
// maps to a fixed pseudo-random vector and a text is the normalised mean of
// its words. It needs no network and serves as the word-vector model and as
// an offline stand-in for remote models.
package hashing

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// DefaultDimensions matches common GloVe vectors.
const DefaultDimensions = 300

const defaultWordCache = 8192

// Embedder produces pseudo word-vector embeddings. Different models yield
// different, unrelated vector spaces.
type Embedder struct {
	dims  int
	words *lru.Cache[string, []float64]
}

// New creates an embedder with the given width; zero means DefaultDimensions.
func New(dims int) (*Embedder, error) {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	cache, err := lru.New[string, []float64](defaultWordCache)
	if err != nil {
		return nil, fmt.Errorf("word cache: %w", err)
	}
	return &Embedder{dims: dims, words: cache}, nil
}

// Dimensions returns the vector width.
func (e *Embedder) Dimensions() int { return e.dims }

// Embed averages the word vectors of text and L2-normalises the result.
// Text without words embeds to the zero vector.
func (e *Embedder) Embed(ctx context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error) {
	if err := ctx.Err(); err != nil {
		return domain.Embedding{}, fmt.Errorf("hashing embed: %w", err)
	}

	sum := make([]float64, e.dims)
	words := strings.Fields(strings.ToLower(text))
	for _, w := range words {
		floats.Add(sum, e.wordVector(model, w))
	}
	if len(words) > 0 {
		floats.Scale(1/float64(len(words)), sum)
	}
	if n := floats.Norm(sum, 2); n > 0 {
		floats.Scale(1/n, sum)
	}
	return domain.Embedding{Vector: sum, Model: model}, nil
}

func (e *Embedder) wordVector(model domain.EmbeddingModel, word string) []float64 {
	key := string(model) + "\x00" + word
	if v, ok := e.words.Get(key); ok {
		return v
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // deterministic, not crypto

	v := make([]float64, e.dims)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	e.words.Add(key, v)
	return v
}

// HealthCheck always succeeds; the embedder is in-process.
func (e *Embedder) HealthCheck(context.Context) error { return nil }
