package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/config"
	"github.com/kailas-cloud/vecsense/internal/db"
	"github.com/kailas-cloud/vecsense/internal/db/memory"
	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/metrics"
	"github.com/kailas-cloud/vecsense/internal/repository/embcache"
	"github.com/kailas-cloud/vecsense/internal/transport/hashing"
	openaiEmb "github.com/kailas-cloud/vecsense/internal/transport/openai"
	embeddinguc "github.com/kailas-cloud/vecsense/internal/usecase/embedding"
)

// cacheStore is what the embedding cache needs from a backend.
type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// buildRouter assembles one decorator chain per configured model:
// provider -> breaker (remote only) -> cache -> instrumented -> instruction.
func buildRouter(cfg config.EmbeddingConfig, store db.Store, logger *zap.Logger) (*embeddinguc.Router, error) {
	cache := buildCacheStore(cfg.Cache, store, logger)

	breaker := embeddinguc.DefaultBreakerConfig()
	breaker.MinRequests = cfg.Breaker.MinRequests
	breaker.FailureRatio = cfg.Breaker.FailureRatio
	breaker.OpenTimeout = time.Duration(cfg.Breaker.OpenTimeoutSec) * time.Second

	router := embeddinguc.NewRouter(logger)

	names := make([]string, 0, len(cfg.Models))
	for name := range cfg.Models {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		mc := cfg.Models[name]
		model := domain.EmbeddingModel(name)
		pc := cfg.Providers[mc.Provider]

		var e domain.Embedder
		switch pc.Kind {
		case config.ProviderHashing:
			dims := mc.Dimensions
			if dims == 0 {
				dims = hashing.DefaultDimensions
			}
			h, err := hashing.New(dims)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", name, err)
			}
			e = h
		case config.ProviderOpenAI:
			base := openaiEmb.NewEmbedder(&openaiEmb.Config{
				APIKey:     pc.APIKey,
				BaseURL:    pc.BaseURL,
				Model:      mc.RemoteModel,
				Dimensions: mc.Dimensions,
				Provider:   mc.Provider,
				RateLimit:  mc.RateLimit,
				Burst:      mc.Burst,
				Logger:     logger,
			})
			e = embeddinguc.NewBreakerEmbedder(base, model, breaker, logger)
		default:
			return nil, fmt.Errorf("model %s: unknown provider kind %q", name, pc.Kind)
		}

		// Cache hits bypass the breaker.
		if cache != nil {
			e = embcache.New(e, cache, metrics.EmbeddingCacheTotal, logger)
		}
		e = embeddinguc.NewInstrumentedEmbedder(e, mc.Provider, mc.Timeout(), logger)
		if mc.Instruction != "" {
			e = domain.NewInstructionEmbedder(e, mc.Instruction)
		}

		if err := router.Register(model, e); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		logger.Info("Embedding model registered",
			zap.String("model", name),
			zap.String("provider", mc.Provider),
			zap.String("kind", pc.Kind),
			zap.String("remote_model", mc.RemoteModel),
			zap.Int("dimensions", mc.Dimensions),
			zap.Bool("cached", cache != nil),
		)
	}
	return router, nil
}

// buildCacheStore returns nil when caching is off.
func buildCacheStore(cfg config.CacheConfig, store db.Store, logger *zap.Logger) cacheStore {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Backend == config.CacheRedis && store != nil {
		logger.Info("Embedding cache enabled", zap.String("backend", cfg.Backend), zap.Duration("ttl", cfg.TTL()))
		return embcache.NewExpiringStore(store, cfg.TTL())
	}
	logger.Info("Embedding cache enabled",
		zap.String("backend", config.CacheMemory),
		zap.Int("size", cfg.Size),
		zap.Duration("ttl", cfg.TTL()),
	)
	return memory.NewKV(cfg.Size, cfg.TTL())
}
