package linear

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// Config holds gradient descent hyperparameters. Both fields must be set.
type Config struct {
	Iterations   int
	LearningRate float64
}

// DefaultConfig is 1000 iterations at learning rate 0.01.
func DefaultConfig() Config {
	return Config{Iterations: 1000, LearningRate: 0.01}
}

// Validate rejects zero or negative hyperparameters.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", domain.ErrInvalidInput, c.Iterations)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) {
		return fmt.Errorf("%w: learning rate must be positive, got %v", domain.ErrInvalidInput, c.LearningRate)
	}
	return nil
}

// LogisticRegression is a one-vs-rest logistic classifier trained by batch
// gradient descent.
type LogisticRegression struct {
	cfg     Config
	weights [][]float64
	bias    []float64
	dims    int
}

// NewLogisticRegression creates an unfitted model.
func NewLogisticRegression(cfg Config) (*LogisticRegression, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &LogisticRegression{cfg: cfg}, nil
}

// Factory returns a Factory producing models with cfg.
// cfg must already be valid.
func (c Config) Factory() Factory {
	return func() Model {
		return &LogisticRegression{cfg: c}
	}
}

// Fit trains one binary classifier per class. Refitting discards the
// previous weights.
func (m *LogisticRegression) Fit(X [][]float64, y []int, numClasses int) error {
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d vectors, %d labels", domain.ErrSizeMismatch, len(X), len(y))
	}
	if len(X) == 0 {
		return fmt.Errorf("%w: empty training set", domain.ErrInvalidInput)
	}
	if numClasses < 1 {
		return fmt.Errorf("%w: need at least one class", domain.ErrInvalidInput)
	}
	dims := len(X[0])
	for i, row := range X {
		if len(row) != dims {
			return fmt.Errorf("%w: row %d has %d dimensions, expected %d",
				domain.ErrDimensionMismatch, i, len(row), dims)
		}
		if y[i] < 0 || y[i] >= numClasses {
			return fmt.Errorf("%w: label %d out of range [0,%d)", domain.ErrInvalidInput, y[i], numClasses)
		}
	}

	weights := make([][]float64, numClasses)
	bias := make([]float64, numClasses)
	for k := range numClasses {
		weights[k], bias[k] = m.fitBinary(X, y, k, dims)
	}
	m.weights, m.bias, m.dims = weights, bias, dims
	return nil
}

func (m *LogisticRegression) fitBinary(X [][]float64, y []int, class, dims int) ([]float64, float64) {
	w := make([]float64, dims)
	grad := make([]float64, dims)
	var b float64
	n := float64(len(X))

	for range m.cfg.Iterations {
		for i := range grad {
			grad[i] = 0
		}
		var gradB float64
		for i, row := range X {
			target := 0.0
			if y[i] == class {
				target = 1
			}
			residual := sigmoid(floats.Dot(w, row)+b) - target
			floats.AddScaled(grad, residual, row)
			gradB += residual
		}
		floats.AddScaled(w, -m.cfg.LearningRate/n, grad)
		b -= m.cfg.LearningRate * gradB / n
	}
	return w, b
}

// DecisionScores returns w_k·x + b_k for every class, or nil when the model
// is unfitted or x has the wrong dimensionality.
func (m *LogisticRegression) DecisionScores(x []float64) []float64 {
	if m.weights == nil || len(x) != m.dims {
		return nil
	}
	scores := make([]float64, len(m.weights))
	for k, w := range m.weights {
		scores[k] = floats.Dot(w, x) + m.bias[k]
	}
	return scores
}

// PredictIndex returns the class with the largest margin. Ties go to the
// lower index.
func (m *LogisticRegression) PredictIndex(x []float64) int {
	return argmax(m.DecisionScores(x))
}

// Dimensions returns the fitted input width, 0 when unfitted.
func (m *LogisticRegression) Dimensions() int { return m.dims }

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
