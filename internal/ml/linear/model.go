// Package linear provides the multi-class linear classifiers used by the
// embedding classifier registry.
package linear

import "math"

// Model is a fitted multi-class linear classifier.
type Model interface {
	// Fit trains on rows of X labelled by class indices in [0, numClasses).
	Fit(X [][]float64, y []int, numClasses int) error
	// PredictIndex returns the argmax class, or -1 when unfitted.
	PredictIndex(x []float64) int
	// DecisionScores returns the raw per-class margins.
	DecisionScores(x []float64) []float64
}

// Factory builds a fresh, unfitted model.
type Factory func() Model

// Softmax normalises scores into a distribution. Shifted by the max for
// numerical stability. Predictions still report the fixed 0.8/0.1
// heuristic; this is the calibrated replacement for it over DecisionScores.
func Softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	peak := scores[0]
	for _, s := range scores[1:] {
		peak = math.Max(peak, s)
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - peak)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func argmax(scores []float64) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
