package method

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

func TestIsValid(t *testing.T) {
	for _, m := range All() {
		if !m.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", m)
		}
	}

	invalid := []Method{"", "semantic", "keyword", "COSINE"}
	for _, m := range invalid {
		if m.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", m)
		}
	}
}

func TestAll_Order(t *testing.T) {
	got := All()
	want := []Method{Cosine, Euclidean, MMR, Hybrid}
	if len(got) != len(want) {
		t.Fatalf("All() len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	got[0] = "mutated"
	if All()[0] != Cosine {
		t.Error("All() must return a copy")
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("mmr")
	if err != nil || m != MMR {
		t.Fatalf("Parse(mmr) = %q, %v", m, err)
	}
	if _, err := Parse("bm25"); !errors.Is(err, domain.ErrUnsupportedMethod) {
		t.Errorf("expected ErrUnsupportedMethod, got %v", err)
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll(nil)
	if err != nil || len(got) != 4 {
		t.Fatalf("ParseAll(nil) = %v, %v", got, err)
	}

	got, err = ParseAll([]string{"hybrid", "cosine", "hybrid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != Hybrid || got[1] != Cosine {
		t.Errorf("ParseAll = %v", got)
	}

	if _, err := ParseAll([]string{"cosine", "nope"}); !errors.Is(err, domain.ErrUnsupportedMethod) {
		t.Errorf("expected ErrUnsupportedMethod, got %v", err)
	}
}
