package classify

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/ml/linear"
)

// --- Mocks ---

// constModel always predicts the same index.
type constModel struct {
	idx int
}

func (constModel) Fit([][]float64, []int, int) error {
	return nil
}

func (m constModel) PredictIndex([]float64) int {
	return m.idx
}

func (constModel) DecisionScores([]float64) []float64 {
	return nil
}

// gatedModel blocks in Fit until release is closed, then predicts index 0.
type gatedModel struct {
	constModel
	started chan<- struct{}
	release <-chan struct{}
}

func (m gatedModel) Fit([][]float64, []int, int) error {
	close(m.started)
	<-m.release
	return nil
}

func newRegistry(categories ...string) *Registry {
	return NewRegistry(categories, linear.DefaultConfig().Factory(), zap.NewNop())
}

var (
	separableX = [][]float64{{1, 0}, {0.9, 0.1}, {0, 1}, {0.1, 0.9}}
	separableY = []string{"A", "A", "B", "B"}
)

// --- Tests ---

func TestRegistry_SeparableScenario(t *testing.T) {
	r := newRegistry("A", "B")
	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Train: %v", err)
	}

	perf, err := r.Evaluate(domain.ModelBERT,
		[][]float64{{0.95, 0.05}, {0.8, 0.2}, {0.05, 0.95}, {0.2, 0.8}},
		[]string{"A", "A", "B", "B"},
	)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if perf.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", perf.Accuracy)
	}
	if perf.ConfusionMatrix[0][0] != 2 || perf.ConfusionMatrix[1][1] != 2 {
		t.Errorf("confusion matrix = %v", perf.ConfusionMatrix)
	}

	cached, ok := r.Performance(domain.ModelBERT)
	if !ok || cached.Accuracy != 1 {
		t.Errorf("Performance() = %+v, %v", cached, ok)
	}
}

func TestRegistry_PredictHeuristic(t *testing.T) {
	r := newRegistry("A", "B")
	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Train: %v", err)
	}
	p, err := r.Predict(domain.ModelBERT, []float64{0, 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p.Category != "B" || p.Confidence != 0.8 {
		t.Errorf("prediction = %+v", p)
	}
	if p.Probabilities["B"] != 0.8 || p.Probabilities["A"] != 0.1 {
		t.Errorf("probabilities = %v", p.Probabilities)
	}
}

func TestRegistry_Untrained(t *testing.T) {
	r := newRegistry("A", "B")
	if _, err := r.Predict(domain.ModelGemini, []float64{1, 0}); !errors.Is(err, domain.ErrModelNotTrained) {
		t.Errorf("Predict: expected ErrModelNotTrained, got %v", err)
	}
	if _, err := r.Evaluate(domain.ModelGemini, nil, nil); !errors.Is(err, domain.ErrModelNotTrained) {
		t.Errorf("Evaluate: expected ErrModelNotTrained, got %v", err)
	}
	if r.IsTrained(domain.ModelGemini) {
		t.Error("IsTrained should be false")
	}
	if _, ok := r.Performance(domain.ModelGemini); ok {
		t.Error("Performance should be absent")
	}
}

func TestRegistry_RetrainClearsPerformance(t *testing.T) {
	r := newRegistry("A", "B")
	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if _, err := r.Evaluate(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if _, ok := r.Performance(domain.ModelBERT); !ok {
		t.Fatal("expected cached performance")
	}

	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("retrain: %v", err)
	}
	if _, ok := r.Performance(domain.ModelBERT); ok {
		t.Error("retraining must discard the previous performance record")
	}
	if !r.IsTrained(domain.ModelBERT) {
		t.Error("model must stay trained after retraining")
	}
}

func TestRegistry_TrainErrors(t *testing.T) {
	r := newRegistry("A", "B")

	if err := r.Train(domain.ModelBERT, separableX, []string{"A"}); !errors.Is(err, domain.ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	if err := r.Train(domain.ModelBERT, nil, nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty set, got %v", err)
	}
	if err := r.Train(domain.ModelBERT, [][]float64{{1}}, []string{"Z"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown label, got %v", err)
	}
	if err := r.Train(domain.ModelBERT, [][]float64{{1, 0}, {1}}, []string{"A", "B"}); !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if r.IsTrained(domain.ModelBERT) {
		t.Error("failed training must not register a model")
	}
}

func TestRegistry_PredictDimensionMismatch(t *testing.T) {
	r := newRegistry("A", "B")
	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if _, err := r.Predict(domain.ModelBERT, []float64{1, 0, 0}); !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestRegistry_OutOfRangeFallsBackToFirstCategory(t *testing.T) {
	r := NewRegistry([]string{"A", "B"}, func() linear.Model { return constModel{idx: 7} }, zap.NewNop())
	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Train: %v", err)
	}
	p, err := r.Predict(domain.ModelBERT, []float64{0, 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p.Category != "A" {
		t.Errorf("fallback category = %q, want A", p.Category)
	}

	perf, err := r.Evaluate(domain.ModelBERT, [][]float64{{0, 1}}, []string{"B"})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if perf.ConfusionMatrix[1][0] != 1 {
		t.Errorf("fallback must count as predicted A: %v", perf.ConfusionMatrix)
	}
}

func TestRegistry_ListAndCompare(t *testing.T) {
	r := newRegistry("A", "B")
	for _, m := range []domain.EmbeddingModel{domain.ModelGemini, domain.ModelSentenceBERT} {
		if err := r.Train(m, separableX, separableY); err != nil {
			t.Fatalf("Train %s: %v", m, err)
		}
	}
	if _, err := r.Evaluate(domain.ModelGemini, separableX, separableY); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	list := r.ListTrained()
	if len(list) != 2 || list[0] != domain.ModelSentenceBERT || list[1] != domain.ModelGemini {
		t.Errorf("ListTrained = %v", list)
	}
	cmp := r.Compare()
	if len(cmp) != 1 {
		t.Fatalf("Compare = %v", cmp)
	}
	if _, ok := cmp[domain.ModelGemini]; !ok {
		t.Error("Compare should include the evaluated model")
	}
}

func TestRegistry_ConcurrentTrainAndPredict(t *testing.T) {
	r := newRegistry("A", "B")
	if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
		t.Fatalf("Train: %v", err)
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := r.Train(domain.ModelBERT, separableX, separableY); err != nil {
				t.Errorf("Train %d: %v", i, err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := r.Predict(domain.ModelBERT, []float64{1, 0}); err != nil {
				t.Errorf("Predict %d: %v", i, err)
			}
		}()
	}
	wg.Wait()

	if list := r.ListTrained(); len(list) != 1 {
		t.Errorf("expected exactly one entry per key, got %v", list)
	}
}

func TestRegistry_TrainAndEvaluateIsAtomic(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	var calls atomic.Int32
	factory := func() linear.Model {
		if calls.Add(1) == 1 {
			return gatedModel{constModel: constModel{idx: 0}, started: started, release: release}
		}
		return constModel{idx: 1}
	}
	r := NewRegistry([]string{"A", "B"}, factory, zap.NewNop())

	testX := [][]float64{{1, 0}, {0.9, 0.1}}
	testY := []string{"A", "A"}

	type outcome struct {
		accuracy float64
		err      error
	}
	evaluated := make(chan outcome, 1)
	go func() {
		perf, err := r.TrainAndEvaluate(domain.ModelBERT, separableX, separableY, testX, testY)
		evaluated <- outcome{perf.Accuracy, err}
	}()

	<-started
	retrained := make(chan error, 1)
	go func() {
		retrained <- r.Train(domain.ModelBERT, separableX, separableY)
	}()
	// Give the competing Train a chance to reach the key lock.
	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-evaluated
	if got.err != nil {
		t.Fatalf("TrainAndEvaluate: %v", got.err)
	}
	if got.accuracy != 1 {
		t.Errorf("accuracy = %v, want 1 (evaluated a model from another fit)", got.accuracy)
	}
	if err := <-retrained; err != nil {
		t.Fatalf("Train: %v", err)
	}

	// The competing Train ran strictly after, so its fit is live and unevaluated.
	if _, ok := r.Performance(domain.ModelBERT); ok {
		t.Error("performance must belong to the latest fit")
	}
	p, err := r.Predict(domain.ModelBERT, []float64{1, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p.Category != "B" {
		t.Errorf("latest fit predicts %q, want B", p.Category)
	}
}
