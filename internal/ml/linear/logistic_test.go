package linear

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

func newModel(t *testing.T) *LogisticRegression {
	t.Helper()
	m, err := NewLogisticRegression(DefaultConfig())
	if err != nil {
		t.Fatalf("NewLogisticRegression: %v", err)
	}
	return m
}

func TestFit_SeparableTwoClass(t *testing.T) {
	m := newModel(t)
	X := [][]float64{
		{1, 0, 0.1},
		{0.9, 0.1, 0},
		{0, 1, 0.1},
		{0.1, 0.9, 0},
	}
	y := []int{0, 0, 1, 1}
	if err := m.Fit(X, y, 2); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	heldOut := [][]float64{{0.95, 0.05, 0}, {0.8, 0.2, 0.1}, {0.05, 0.95, 0}, {0.2, 0.8, 0.1}}
	want := []int{0, 0, 1, 1}
	for i, x := range heldOut {
		if got := m.PredictIndex(x); got != want[i] {
			t.Errorf("PredictIndex(%v) = %d, want %d", x, got, want[i])
		}
	}
}

func TestFit_ThreeClass(t *testing.T) {
	m := newModel(t)
	X := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.9, 0, 0}, {0, 0.9, 0}, {0, 0, 0.9}}
	y := []int{0, 1, 2, 0, 1, 2}
	if err := m.Fit(X, y, 3); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for i, x := range X[:3] {
		if got := m.PredictIndex(x); got != i {
			t.Errorf("PredictIndex(%v) = %d, want %d", x, got, i)
		}
	}
	if scores := m.DecisionScores(X[0]); len(scores) != 3 {
		t.Errorf("DecisionScores len = %d, want 3", len(scores))
	}
}

func TestFit_Errors(t *testing.T) {
	m := newModel(t)

	if err := m.Fit([][]float64{{1}}, []int{0, 1}, 2); !errors.Is(err, domain.ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if err := m.Fit([][]float64{{1, 2}, {1}}, []int{0, 1}, 2); !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if err := m.Fit(nil, nil, 2); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty set, got %v", err)
	}
	if err := m.Fit([][]float64{{1}}, []int{5}, 2); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for bad label, got %v", err)
	}
}

func TestUnfitted(t *testing.T) {
	m := newModel(t)
	if got := m.PredictIndex([]float64{1, 2}); got != -1 {
		t.Errorf("unfitted PredictIndex = %d, want -1", got)
	}
	if m.DecisionScores([]float64{1}) != nil {
		t.Error("unfitted DecisionScores should be nil")
	}
}

func TestPredict_WrongDimensions(t *testing.T) {
	m := newModel(t)
	if err := m.Fit([][]float64{{1, 0}, {0, 1}}, []int{0, 1}, 2); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if got := m.PredictIndex([]float64{1, 0, 0}); got != -1 {
		t.Errorf("PredictIndex with wrong width = %d, want -1", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"zero iterations", Config{Iterations: 0, LearningRate: 0.01}, false},
		{"zero rate", Config{Iterations: 10}, false},
		{"negative rate", Config{Iterations: 10, LearningRate: -1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if _, err := NewLogisticRegression(Config{}); err == nil {
		t.Error("NewLogisticRegression must reject an unset config")
	}
}

func TestFactory_IndependentModels(t *testing.T) {
	f := DefaultConfig().Factory()
	a, b := f(), f()
	if err := a.Fit([][]float64{{1}, {-1}}, []int{0, 1}, 2); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if b.PredictIndex([]float64{1}) != -1 {
		t.Error("fitting one factory model must not affect another")
	}
}

func TestSoftmax(t *testing.T) {
	p := Softmax([]float64{1000, 1000})
	if math.Abs(p[0]-0.5) > 1e-12 || math.Abs(p[1]-0.5) > 1e-12 {
		t.Errorf("Softmax equal large scores = %v", p)
	}

	p = Softmax([]float64{2, 1, 0})
	var sum float64
	for _, v := range p {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("Softmax sums to %v", sum)
	}
	if !(p[0] > p[1] && p[1] > p[2]) {
		t.Errorf("Softmax must preserve order, got %v", p)
	}
	if Softmax(nil) != nil {
		t.Error("Softmax(nil) should be nil")
	}
}
