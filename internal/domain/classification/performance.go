// Package classification holds classifier evaluation and prediction records.
package classification

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// Performance is the held-out evaluation of one trained model.
// ConfusionMatrix[actual][predicted] counts test examples.
type Performance struct {
	Accuracy        float64
	Precision       map[string]float64
	Recall          map[string]float64
	F1              map[string]float64
	ConfusionMatrix [][]int
}

// MacroAverages returns unweighted means of per-category precision, recall and F1.
func (p *Performance) MacroAverages() (precision, recall, f1 float64) {
	return mean(p.Precision), mean(p.Recall), mean(p.F1)
}

func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum / float64(len(m))
}

// Evaluate compares actual and predicted category indices over categories.
// Empty input yields zero accuracy and an all-zero matrix.
func Evaluate(categories []string, actual, predicted []int) (Performance, error) {
	if len(actual) != len(predicted) {
		return Performance{}, fmt.Errorf("%w: %d actual labels, %d predictions",
			domain.ErrSizeMismatch, len(actual), len(predicted))
	}
	n := len(categories)
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	correct := 0
	for i := range actual {
		a, p := actual[i], predicted[i]
		if a < 0 || a >= n || p < 0 || p >= n {
			return Performance{}, fmt.Errorf("%w: example %d has index out of range (actual %d, predicted %d)",
				domain.ErrInvalidInput, i, a, p)
		}
		matrix[a][p]++
		if a == p {
			correct++
		}
	}

	perf := Performance{
		Precision:       make(map[string]float64, n),
		Recall:          make(map[string]float64, n),
		F1:              make(map[string]float64, n),
		ConfusionMatrix: matrix,
	}
	if len(actual) > 0 {
		perf.Accuracy = float64(correct) / float64(len(actual))
	}

	for c, name := range categories {
		tp := matrix[c][c]
		var fp, fn int
		for other := 0; other < n; other++ {
			if other == c {
				continue
			}
			fp += matrix[other][c]
			fn += matrix[c][other]
		}
		p := ratio(tp, tp+fp)
		r := ratio(tp, tp+fn)
		perf.Precision[name] = p
		perf.Recall[name] = r
		perf.F1[name] = f1(p, r)
	}
	return perf, nil
}

func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func f1(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Percent converts a [0,1] scalar to a percentage rounded to 2 decimals.
func Percent(x float64) float64 {
	return math.Round(x*10000) / 100
}

// PercentMap applies Percent to every value.
func PercentMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = Percent(v)
	}
	return out
}
