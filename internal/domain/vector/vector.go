// Package vector holds the similarity primitives shared by every retrieval method.
package vector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

func checkDims(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", domain.ErrDimensionMismatch, len(a), len(b))
	}
	return nil
}

// Cosine returns dot(a,b) / (|a|·|b|).
// A zero-norm operand yields 0 instead of an error.
func Cosine(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return zeroNormFallback(), nil
	}
	return floats.Dot(a, b) / (normA * normB), nil
}

// zeroNormFallback is the cosine value reported when either vector has no direction.
func zeroNormFallback() float64 { return 0 }

// Distance returns the Euclidean (L2) distance between a and b.
func Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 2), nil
}

// Euclidean maps L2 distance into (0,1] as 1/(1+d).
// This is a monotone heuristic transform, not a metric: 1 only at distance 0
// and no fixed lower bound other than approaching 0.
func Euclidean(a, b []float64) (float64, error) {
	d, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	return 1 / (1 + d), nil
}
