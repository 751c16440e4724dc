package domain

import (
	"context"
	"errors"
	"testing"
)

type stubEmbedder struct {
	vec   []float64
	err   error
	got   []string
	model EmbeddingModel
}

func (s *stubEmbedder) Embed(_ context.Context, text string, model EmbeddingModel) (Embedding, error) {
	s.got = append(s.got, text)
	s.model = model
	if s.err != nil {
		return Embedding{}, s.err
	}
	return Embedding{Vector: s.vec, Model: model}, nil
}

func TestParseEmbeddingModel(t *testing.T) {
	for _, m := range AllEmbeddingModels() {
		got, err := ParseEmbeddingModel(string(m))
		if err != nil {
			t.Fatalf("ParseEmbeddingModel(%q): %v", m, err)
		}
		if got != m {
			t.Errorf("got %q, want %q", got, m)
		}
	}

	_, err := ParseEmbeddingModel("gpt-embed")
	if !errors.Is(err, ErrUnsupportedModel) {
		t.Fatalf("expected ErrUnsupportedModel, got %v", err)
	}
}

func TestAllEmbeddingModels_ReturnsCopy(t *testing.T) {
	models := AllEmbeddingModels()
	models[0] = "mutated"
	if AllEmbeddingModels()[0] != ModelSentenceBERT {
		t.Fatal("AllEmbeddingModels must not expose the internal slice")
	}
}

func TestEmbedAll_PreservesOrderAndRepeats(t *testing.T) {
	inner := &stubEmbedder{vec: []float64{1, 2}}
	out, err := EmbedAll(context.Background(), inner, []string{"a", "b", "a"}, ModelBERT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 embeddings, got %d", len(out))
	}
	if len(inner.got) != 3 || inner.got[2] != "a" {
		t.Fatalf("expected every text to be embedded, got %v", inner.got)
	}
	if out[0].Dimensions() != 2 || out[0].Model != ModelBERT {
		t.Errorf("unexpected embedding: %+v", out[0])
	}
}

func TestEmbedAll_StopsOnError(t *testing.T) {
	inner := &stubEmbedder{err: errors.New("provider down")}
	_, err := EmbedAll(context.Background(), inner, []string{"a", "b"}, ModelBERT)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(inner.got) != 1 {
		t.Errorf("expected to stop after first failure, embedded %d texts", len(inner.got))
	}
}

func TestInstructionEmbedder_PrependsInstruction(t *testing.T) {
	inner := &stubEmbedder{vec: []float64{0.1, 0.2, 0.3}}
	emb := NewInstructionEmbedder(inner, "query: ")

	result, err := emb.Embed(context.Background(), "hello world", ModelGemini)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.got[0] != "query: hello world" {
		t.Errorf("expected prepended text, got %q", inner.got[0])
	}
	if inner.model != ModelGemini {
		t.Errorf("expected model to pass through, got %q", inner.model)
	}
	if result.Dimensions() != 3 {
		t.Errorf("expected 3-element vector, got %d", result.Dimensions())
	}
}

func TestInstructionEmbedder_ErrorPropagation(t *testing.T) {
	innerErr := errors.New("provider down")
	emb := NewInstructionEmbedder(&stubEmbedder{err: innerErr}, "query: ")

	_, err := emb.Embed(context.Background(), "hello", ModelBERT)
	if !errors.Is(err, innerErr) {
		t.Fatalf("expected wrapped inner error, got %v", err)
	}
}

func TestModelError_Unwraps(t *testing.T) {
	err := NewModelNotTrained(ModelBERT)
	if !errors.Is(err, ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got %v", err)
	}
	var me *ModelError
	if !errors.As(err, &me) || me.Model != ModelBERT {
		t.Fatalf("expected ModelError for bert, got %v", err)
	}
}
