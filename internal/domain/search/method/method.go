package method

import (
	"fmt"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// Method is the retrieval scoring strategy.
type Method string

// Retrieval method constants.
const (
	Cosine    Method = "cosine"
	Euclidean Method = "euclidean"
	// MMR re-ranks cosine candidates for diversity.
	MMR Method = "mmr"
	// Hybrid blends cosine similarity with lexical entity matching.
	Hybrid Method = "hybrid"
)

var all = [...]Method{Cosine, Euclidean, MMR, Hybrid}

// All returns every supported method in canonical order.
func All() []Method {
	out := make([]Method, len(all))
	copy(out, all[:])
	return out
}

// IsValid checks if the method is one of the supported values.
func (m Method) IsValid() bool {
	for _, v := range all {
		if m == v {
			return true
		}
	}
	return false
}

// Parse converts a method name.
func Parse(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, s)
	}
	return m, nil
}

// ParseAll parses a list of names; an empty list means every method.
// Duplicates are collapsed, keeping first position.
func ParseAll(names []string) ([]Method, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Method, 0, len(names))
	seen := make(map[Method]struct{}, len(names))
	for _, n := range names {
		m, err := Parse(n)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out, nil
}
