package document

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/vecsense/internal/domain"
	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
)

// mockStore is a map-backed implementation of the consumer interface.
type mockStore struct {
	hashes map[string]map[string]string

	hsetErr  error
	scanErr  error
	multiErr error
}

func (m *mockStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if m.hsetErr != nil {
		return m.hsetErr
	}
	if m.hashes == nil {
		m.hashes = make(map[string]map[string]string)
	}
	m.hashes[key] = fields
	return nil
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	return m.hashes[key], nil
}

func (m *mockStore) HGetAllMulti(_ context.Context, keys []string) ([]map[string]string, error) {
	if m.multiErr != nil {
		return nil, m.multiErr
	}
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i] = m.hashes[k]
	}
	return out, nil
}

func (m *mockStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.hashes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testDocument(t *testing.T, id string, at time.Time) domdoc.Document {
	t.Helper()
	doc, err := domdoc.New(id, "Title "+id, "content of "+id, at)
	if err != nil {
		t.Fatalf("domdoc.New: %v", err)
	}
	doc.SetEmbedding(domain.Embedding{Vector: []float64{0.25, -1.5, 3}, Model: domain.ModelSentenceBERT})
	return doc
}
