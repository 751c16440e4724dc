package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
)

// --- Mocks ---

type mockDocRepo struct {
	saved   []domdoc.Document
	saveErr error
	getDoc  domdoc.Document
	getErr  error
	list    []domdoc.Document
	listErr error
}

func (m *mockDocRepo) Save(_ context.Context, doc *domdoc.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, *doc)
	return nil
}

func (m *mockDocRepo) Get(_ context.Context, _ string) (domdoc.Document, error) {
	return m.getDoc, m.getErr
}

func (m *mockDocRepo) List(_ context.Context) ([]domdoc.Document, error) {
	return m.list, m.listErr
}

type mockEmbedder struct {
	err   error
	texts []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string, model domain.EmbeddingModel) (domain.Embedding, error) {
	m.texts = append(m.texts, text)
	if m.err != nil {
		return domain.Embedding{}, m.err
	}
	return domain.Embedding{Vector: []float64{1, 2, 3}, Model: model}, nil
}

func newTestService(repo Repository, emb *mockEmbedder) *Service {
	s := New(repo, emb, domain.ModelSentenceBERT, zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "fixed-id" }
	return s
}

// --- Tests ---

func TestCreate_EmbedsContentAndSaves(t *testing.T) {
	repo := &mockDocRepo{}
	emb := &mockEmbedder{}
	svc := newTestService(repo, emb)

	doc, err := svc.Create(context.Background(), "Rent agreement", "Tenant pays monthly rent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "fixed-id" {
		t.Errorf("ID() = %q", doc.ID())
	}
	if len(emb.texts) != 1 || emb.texts[0] != "Tenant pays monthly rent" {
		t.Errorf("expected content to be embedded, got %v", emb.texts)
	}
	if len(repo.saved) != 1 || repo.saved[0].Embedding().Model != domain.ModelSentenceBERT {
		t.Fatalf("unexpected saved docs: %+v", repo.saved)
	}
	if repo.saved[0].Embedding().Dimensions() != 3 {
		t.Errorf("saved embedding dims = %d", repo.saved[0].Embedding().Dimensions())
	}
}

func TestCreate_DefaultIDsAreUnique(t *testing.T) {
	repo := &mockDocRepo{}
	svc := New(repo, &mockEmbedder{}, domain.ModelBERT, zap.NewNop())

	a, err := svc.Create(context.Background(), "a", "a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, _ := svc.Create(context.Background(), "b", "b")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct generated ids, got %q and %q", a.ID(), b.ID())
	}
}

func TestCreate_Validation(t *testing.T) {
	emb := &mockEmbedder{}
	svc := newTestService(&mockDocRepo{}, emb)

	_, err := svc.Create(context.Background(), "", "content")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(emb.texts) != 0 {
		t.Error("invalid documents must not be embedded")
	}
}

func TestCreate_EmbeddingFailure(t *testing.T) {
	repo := &mockDocRepo{}
	svc := newTestService(repo, &mockEmbedder{err: domain.ErrEmbeddingFailure})

	_, err := svc.Create(context.Background(), "t", "c")
	if !errors.Is(err, domain.ErrEmbeddingFailure) {
		t.Fatalf("expected ErrEmbeddingFailure, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("nothing must be saved when embedding fails")
	}
}

func TestCreate_SaveFailure(t *testing.T) {
	svc := newTestService(&mockDocRepo{saveErr: errors.New("READONLY")}, &mockEmbedder{})
	if _, err := svc.Create(context.Background(), "t", "c"); err == nil {
		t.Fatal("expected error")
	}
}

func TestWithoutRepository(t *testing.T) {
	svc := New(nil, &mockEmbedder{}, domain.ModelBERT, zap.NewNop())
	ctx := context.Background()

	if svc.Enabled() {
		t.Error("Enabled() must be false without repository")
	}
	if _, err := svc.Create(ctx, "t", "c"); !errors.Is(err, domain.ErrNotImplemented) {
		t.Errorf("Create: expected ErrNotImplemented, got %v", err)
	}
	if _, err := svc.List(ctx); !errors.Is(err, domain.ErrNotImplemented) {
		t.Errorf("List: expected ErrNotImplemented, got %v", err)
	}
	if _, err := svc.Get(ctx, "x"); !errors.Is(err, domain.ErrNotImplemented) {
		t.Errorf("Get: expected ErrNotImplemented, got %v", err)
	}
}

func TestListAndGet(t *testing.T) {
	d := domdoc.Reconstruct("a", "A", "aa", domain.Embedding{}, time.Time{})
	repo := &mockDocRepo{list: []domdoc.Document{d}, getErr: domain.ErrNotFound}
	svc := newTestService(repo, &mockEmbedder{})

	docs, err := svc.List(context.Background())
	if err != nil || len(docs) != 1 {
		t.Fatalf("List: %v, %v", docs, err)
	}
	if _, err := svc.Get(context.Background(), "zzz"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
