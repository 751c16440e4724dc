package embcache

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/db"
	"github.com/kailas-cloud/vecsense/internal/domain"
)

type mockEmbedder struct {
	vector []float64
	err    error
	calls  int
	models []domain.EmbeddingModel
}

func (m *mockEmbedder) Embed(_ context.Context, _ string, model domain.EmbeddingModel) (domain.Embedding, error) {
	m.calls++
	m.models = append(m.models, model)
	if m.err != nil {
		return domain.Embedding{}, m.err
	}
	return domain.Embedding{Vector: m.vector, Model: model}, nil
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

// mapStore is a working in-memory store for round-trip tests.
type mapStore map[string][]byte

func (m mapStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m mapStore) Set(_ context.Context, key string, value []byte) error {
	m[key] = value
	return nil
}

func newTestCachedEmbedder(t *testing.T, inner *mockEmbedder) (*CachedEmbedder, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	ce := New(inner, ms, nil, zap.NewNop())
	return ce, ms
}
