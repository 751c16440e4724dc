package health

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockModels struct {
	errs map[domain.EmbeddingModel]error
}

func (m *mockModels) Models() []domain.EmbeddingModel {
	var out []domain.EmbeddingModel
	for _, model := range domain.AllEmbeddingModels() {
		if _, ok := m.errs[model]; ok {
			out = append(out, model)
		}
	}
	return out
}

func (m *mockModels) CheckModel(_ context.Context, model domain.EmbeddingModel) error {
	return m.errs[model]
}

func healthyModels() *mockModels {
	return &mockModels{errs: map[domain.EmbeddingModel]error{
		domain.ModelBERT:          nil,
		domain.ModelWord2VecGloVe: nil,
	}}
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockDBPinger{}, healthyModels(), zap.NewNop())
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	for _, name := range []string{"database", "embedding:bert", "embedding:word2vec-glove"} {
		if r.Checks[name] != CheckOK {
			t.Errorf("expected %s %q, got %q", name, CheckOK, r.Checks[name])
		}
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, healthyModels(), zap.NewNop())
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
}

func TestCheck_OneModelDown(t *testing.T) {
	models := healthyModels()
	models.errs[domain.ModelGemini] = errors.New("timeout")
	svc := New(nil, models, zap.NewNop())
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["embedding:gemini"] != CheckError {
		t.Errorf("expected gemini error, got %q", r.Checks["embedding:gemini"])
	}
	if _, ok := r.Checks["database"]; ok {
		t.Error("database check should be absent without a database")
	}
}

func TestCheck_EverythingDown(t *testing.T) {
	models := &mockModels{errs: map[domain.EmbeddingModel]error{domain.ModelBERT: errors.New("down")}}
	svc := New(&mockDBPinger{err: errors.New("db down")}, models, zap.NewNop())
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
}

func TestCheck_NothingConfigured(t *testing.T) {
	r := New(nil, nil, zap.NewNop()).Check(context.Background())
	if r.Status != Healthy || len(r.Checks) != 0 {
		t.Errorf("unexpected report: %+v", r)
	}
}
