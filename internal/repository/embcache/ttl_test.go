package embcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/db"
	"github.com/kailas-cloud/vecsense/internal/domain"
)

type ttlRecorder struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func (r *ttlRecorder) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (r *ttlRecorder) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	r.data[key] = value
	r.ttls[key] = ttl
	return nil
}

func TestExpiringStore_AppliesTTL(t *testing.T) {
	rec := &ttlRecorder{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
	inner := &mockEmbedder{vector: []float64{0.5, -0.5}}
	ce := New(inner, NewExpiringStore(rec, time.Hour), nil, zap.NewNop())

	ctx := context.Background()
	if _, err := ce.Embed(ctx, "lease deed", domain.ModelBERT); err != nil {
		t.Fatalf("first embed: %v", err)
	}
	if _, err := ce.Embed(ctx, "lease deed", domain.ModelBERT); err != nil {
		t.Fatalf("second embed: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
	key := cacheKey(domain.ModelBERT, "lease deed")
	if got := rec.ttls[key]; got != time.Hour {
		t.Errorf("ttl = %v, want 1h", got)
	}
}
