package vecsense

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/transport/hashing"
)

// Option configures the Engine.
type Option interface {
	apply(*engineConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*engineConfig)

func (f optionFunc) apply(c *engineConfig) { f(c) }

type engineConfig struct {
	embedder   Embedder
	hashDims   int
	logger     *zap.Logger
	searchWith Model
	topK       int
	mmrLambda  float64

	iterations   int
	learningRate float64
	testSplit    float64
	seed         uint64
}

func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		hashDims:     hashing.DefaultDimensions,
		logger:       zap.NewNop(),
		searchWith:   ModelSentenceBERT,
		topK:         5,
		mmrLambda:    0.7,
		iterations:   1000,
		learningRate: 0.01,
		testSplit:    0.2,
	}
}

// WithEmbedder sets the embedding provider for every model.
func WithEmbedder(e Embedder) Option {
	return optionFunc(func(c *engineConfig) {
		c.embedder = e
	})
}

// WithHashingEmbedder uses the built-in offline embedder with dims
// dimensions. This is the default, at 300 dimensions.
func WithHashingEmbedder(dims int) Option {
	return optionFunc(func(c *engineConfig) {
		c.embedder = nil
		c.hashDims = dims
	})
}

// WithLogger sets a structured logger. The default discards logs.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithSearchModel selects the model used to embed queries and documents.
func WithSearchModel(m Model) Option {
	return optionFunc(func(c *engineConfig) {
		c.searchWith = m
	})
}

// WithTopK sets the result count for non-MMR methods.
func WithTopK(k int) Option {
	return optionFunc(func(c *engineConfig) {
		c.topK = k
	})
}

// WithMMRLambda sets the relevance/diversity trade-off in (0,1].
func WithMMRLambda(lambda float64) Option {
	return optionFunc(func(c *engineConfig) {
		c.mmrLambda = lambda
	})
}

// WithClassifierConfig sets gradient descent iterations and learning rate.
func WithClassifierConfig(iterations int, learningRate float64) Option {
	return optionFunc(func(c *engineConfig) {
		c.iterations = iterations
		c.learningRate = learningRate
	})
}

// WithTestSplit sets the held-out fraction used by Train.
func WithTestSplit(split float64) Option {
	return optionFunc(func(c *engineConfig) {
		c.testSplit = split
	})
}

// WithSeed fixes the training shuffle so runs are reproducible.
func WithSeed(seed uint64) Option {
	return optionFunc(func(c *engineConfig) {
		c.seed = seed
	})
}
