package embcache

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/db"
	"github.com/kailas-cloud/vecsense/internal/domain"
)

func TestEmbed_CacheMiss(t *testing.T) {
	inner := &mockEmbedder{vector: []float64{0.1, 0.2, 0.3}}
	ce, ms := newTestCachedEmbedder(t, inner)

	var setKey string
	ms.setFn = func(_ context.Context, key string, _ []byte) error {
		setKey = key
		return nil
	}

	emb, err := ce.Embed(context.Background(), "test text", domain.ModelBERT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emb.Vector) != 3 || emb.Vector[0] != 0.1 {
		t.Fatalf("unexpected vector: %v", emb.Vector)
	}
	if !strings.HasPrefix(setKey, cacheKeyPrefix) {
		t.Fatalf("expected SET with cache key, got %q", setKey)
	}
}

func TestEmbed_CacheHit(t *testing.T) {
	inner := &mockEmbedder{vector: []float64{0.1, 0.2, 0.3}}
	ce, ms := newTestCachedEmbedder(t, inner)

	cached := vectorToBytes([]float64{0.4, 0.5, 0.6})
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return cached, nil
	}

	emb, err := ce.Embed(context.Background(), "test text", domain.ModelGemini)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emb.Vector) != 3 || emb.Vector[0] != 0.4 {
		t.Fatalf("expected cached vector, got: %v", emb.Vector)
	}
	if emb.Model != domain.ModelGemini {
		t.Errorf("model = %q", emb.Model)
	}
	if inner.calls != 0 {
		t.Errorf("inner called %d times on hit", inner.calls)
	}
}

func TestEmbed_RoundTripIsKeyedByModel(t *testing.T) {
	inner := &mockEmbedder{vector: []float64{1, -2.5, 3e-9}}
	ce := New(inner, mapStore{}, nil, zap.NewNop())
	ctx := context.Background()

	for range 3 {
		if _, err := ce.Embed(ctx, "same text", domain.ModelBERT); err != nil {
			t.Fatalf("Embed: %v", err)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call for repeated text, got %d", inner.calls)
	}

	emb, err := ce.Embed(ctx, "same text", domain.ModelSentenceBERT)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("another model must miss, inner calls = %d", inner.calls)
	}
	if emb.Vector[2] != 3e-9 {
		t.Errorf("vector not preserved: %v", emb.Vector)
	}
}

func TestEmbed_InnerError(t *testing.T) {
	inner := &mockEmbedder{err: domain.ErrEmbeddingFailure}
	ce, _ := newTestCachedEmbedder(t, inner)

	_, err := ce.Embed(context.Background(), "test text", domain.ModelBERT)
	if !errors.Is(err, domain.ErrEmbeddingFailure) {
		t.Fatalf("expected ErrEmbeddingFailure, got %v", err)
	}
}

func TestEmbed_StoreErrorsDegradeToMiss(t *testing.T) {
	inner := &mockEmbedder{vector: []float64{0.7}}
	ce, ms := newTestCachedEmbedder(t, inner)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: errors.New("connection refused")}
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte) error {
		return &db.Error{Op: db.OpSet, Err: errors.New("connection refused")}
	}

	emb, err := ce.Embed(context.Background(), "x", domain.ModelBERT)
	if err != nil {
		t.Fatalf("store failure must not fail Embed: %v", err)
	}
	if emb.Vector[0] != 0.7 || inner.calls != 1 {
		t.Errorf("expected inner result, got %v (calls %d)", emb.Vector, inner.calls)
	}
}

func TestEmbed_CorruptEntryIsMiss(t *testing.T) {
	inner := &mockEmbedder{vector: []float64{0.3}}
	ce, ms := newTestCachedEmbedder(t, inner)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte{1, 2, 3}, nil
	}

	emb, err := ce.Embed(context.Background(), "x", domain.ModelBERT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emb.Vector[0] != 0.3 {
		t.Errorf("expected fresh vector, got %v", emb.Vector)
	}
}

func TestEmbed_CountsHitsAndMisses(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_cache_total"}, []string{"model", "result"})
	ce := New(&mockEmbedder{vector: []float64{1}}, mapStore{}, counter, zap.NewNop())

	_, _ = ce.Embed(context.Background(), "a", domain.ModelBERT)
	_, _ = ce.Embed(context.Background(), "a", domain.ModelBERT)

	if got := testutil.ToFloat64(counter.WithLabelValues("bert", "miss")); got != 1 {
		t.Errorf("miss = %v, want 1", got)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("bert", "hit")); got != 1 {
		t.Errorf("hit = %v, want 1", got)
	}
}

func TestCacheKey(t *testing.T) {
	a := cacheKey(domain.ModelBERT, "text")
	if a != cacheKey(domain.ModelBERT, "text") {
		t.Error("key must be deterministic")
	}
	if a == cacheKey(domain.ModelGemini, "text") {
		t.Error("key must depend on model")
	}
	// NUL separator keeps model/text boundaries unambiguous.
	if cacheKey("ab", "c") == cacheKey("a", "bc") {
		t.Error("model and text must not run together")
	}
}
