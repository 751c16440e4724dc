package classify

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/classification"
	"github.com/kailas-cloud/vecsense/internal/metrics"
	"github.com/kailas-cloud/vecsense/internal/ml/linear"
)

// trainedModel is an immutable snapshot; retraining or evaluating replaces it.
type trainedModel struct {
	model       linear.Model
	categories  []string
	dims        int
	performance *classification.Performance
}

// Registry holds at most one trained classifier per embedding model.
// Train and Evaluate are serialised per key; predictions and reads proceed
// concurrently against the current snapshot.
type Registry struct {
	categories []string
	factory    linear.Factory
	logger     *zap.Logger

	mu     sync.RWMutex
	models map[domain.EmbeddingModel]*trainedModel
	locks  map[domain.EmbeddingModel]*sync.Mutex
}

// NewRegistry creates an empty registry over a fixed ordered category set.
func NewRegistry(categories []string, factory linear.Factory, logger *zap.Logger) *Registry {
	return &Registry{
		categories: slices.Clone(categories),
		factory:    factory,
		logger:     logger,
		models:     make(map[domain.EmbeddingModel]*trainedModel),
		locks:      make(map[domain.EmbeddingModel]*sync.Mutex),
	}
}

// Categories returns the ordered category set.
func (r *Registry) Categories() []string { return slices.Clone(r.categories) }

func (r *Registry) keyLock(key domain.EmbeddingModel) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

func (r *Registry) snapshot(key domain.EmbeddingModel) (*trainedModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tm, ok := r.models[key]
	return tm, ok
}

func (r *Registry) indices(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		idx := slices.Index(r.categories, l)
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, l)
		}
		out[i] = idx
	}
	return out, nil
}

// Train fits a new classifier for key and replaces any previous one,
// discarding its performance record.
func (r *Registry) Train(key domain.EmbeddingModel, vectors [][]float64, labels []string) error {
	l := r.keyLock(key)
	l.Lock()
	defer l.Unlock()
	return r.train(key, vectors, labels)
}

// TrainAndEvaluate fits key and scores the fresh model on held-out data
// under one lock, so the returned performance always belongs to this fit.
func (r *Registry) TrainAndEvaluate(
	key domain.EmbeddingModel,
	trainVecs [][]float64, trainLabels []string,
	testVecs [][]float64, testLabels []string,
) (classification.Performance, error) {
	l := r.keyLock(key)
	l.Lock()
	defer l.Unlock()

	if err := r.train(key, trainVecs, trainLabels); err != nil {
		return classification.Performance{}, err
	}
	return r.evaluate(key, testVecs, testLabels)
}

// train requires the key lock.
func (r *Registry) train(key domain.EmbeddingModel, vectors [][]float64, labels []string) error {
	if len(vectors) != len(labels) {
		return fmt.Errorf("%w: %d vectors, %d labels", domain.ErrSizeMismatch, len(vectors), len(labels))
	}
	if len(vectors) == 0 {
		return fmt.Errorf("%w: empty training set", domain.ErrInvalidInput)
	}
	y, err := r.indices(labels)
	if err != nil {
		return err
	}

	m := r.factory()
	if err := m.Fit(vectors, y, len(r.categories)); err != nil {
		metrics.ClassifierTrainingsTotal.WithLabelValues(string(key), "error").Inc()
		return fmt.Errorf("fit %s: %w", key, err)
	}

	r.mu.Lock()
	r.models[key] = &trainedModel{
		model:      m,
		categories: r.categories,
		dims:       len(vectors[0]),
	}
	r.mu.Unlock()

	metrics.ClassifierTrainingsTotal.WithLabelValues(string(key), "ok").Inc()
	r.logger.Info("Classifier trained",
		zap.String("model", string(key)),
		zap.Int("examples", len(vectors)),
		zap.Int("dimensions", len(vectors[0])),
	)
	return nil
}

func (r *Registry) predictIndex(key domain.EmbeddingModel, tm *trainedModel, vec []float64) (int, error) {
	if len(vec) != tm.dims {
		return 0, fmt.Errorf("%w: got %d, model %s expects %d",
			domain.ErrDimensionMismatch, len(vec), key, tm.dims)
	}
	idx := tm.model.PredictIndex(vec)
	if idx < 0 || idx >= len(tm.categories) {
		return r.outOfRangeFallback(key, idx), nil
	}
	return idx, nil
}

// outOfRangeFallback maps an unexpected classifier index to the first
// category.
func (r *Registry) outOfRangeFallback(key domain.EmbeddingModel, idx int) int {
	r.logger.Warn("Classifier returned out-of-range index, using first category",
		zap.String("model", string(key)),
		zap.Int("index", idx),
	)
	return 0
}

// Predict classifies vec with the model trained for key. Probabilities are
// the fixed heuristic placeholder, not a calibrated posterior.
func (r *Registry) Predict(key domain.EmbeddingModel, vec []float64) (classification.Prediction, error) {
	tm, ok := r.snapshot(key)
	if !ok {
		return classification.Prediction{}, domain.NewModelNotTrained(key)
	}
	idx, err := r.predictIndex(key, tm, vec)
	if err != nil {
		return classification.Prediction{}, err
	}
	return classification.Prediction{
		Model:         key,
		Category:      tm.categories[idx],
		Confidence:    classification.PredictedProbability,
		Probabilities: classification.HeuristicProbabilities(tm.categories, idx),
	}, nil
}

// Evaluate scores the model for key on held-out data and caches the
// result on it.
func (r *Registry) Evaluate(key domain.EmbeddingModel, vectors [][]float64, labels []string) (classification.Performance, error) {
	l := r.keyLock(key)
	l.Lock()
	defer l.Unlock()
	return r.evaluate(key, vectors, labels)
}

// evaluate requires the key lock.
func (r *Registry) evaluate(key domain.EmbeddingModel, vectors [][]float64, labels []string) (classification.Performance, error) {
	if len(vectors) != len(labels) {
		return classification.Performance{}, fmt.Errorf("%w: %d vectors, %d labels",
			domain.ErrSizeMismatch, len(vectors), len(labels))
	}
	actual, err := r.indices(labels)
	if err != nil {
		return classification.Performance{}, err
	}

	tm, ok := r.snapshot(key)
	if !ok {
		return classification.Performance{}, domain.NewModelNotTrained(key)
	}

	predicted := make([]int, len(vectors))
	for i, v := range vectors {
		if predicted[i], err = r.predictIndex(key, tm, v); err != nil {
			return classification.Performance{}, fmt.Errorf("example %d: %w", i, err)
		}
	}

	perf, err := classification.Evaluate(tm.categories, actual, predicted)
	if err != nil {
		return classification.Performance{}, fmt.Errorf("evaluate %s: %w", key, err)
	}

	next := *tm
	next.performance = &perf
	r.mu.Lock()
	r.models[key] = &next
	r.mu.Unlock()

	metrics.ClassifierAccuracy.WithLabelValues(string(key)).Set(perf.Accuracy)
	return perf, nil
}

// IsTrained reports whether key has a trained model.
func (r *Registry) IsTrained(key domain.EmbeddingModel) bool {
	_, ok := r.snapshot(key)
	return ok
}

// Performance returns the cached evaluation for key. ok is false when the
// model is untrained or not yet evaluated since its last training.
func (r *Registry) Performance(key domain.EmbeddingModel) (classification.Performance, bool) {
	tm, ok := r.snapshot(key)
	if !ok || tm.performance == nil {
		return classification.Performance{}, false
	}
	return *tm.performance, true
}

// ListTrained returns trained keys in canonical model order.
func (r *Registry) ListTrained() []domain.EmbeddingModel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.EmbeddingModel
	for _, m := range domain.AllEmbeddingModels() {
		if _, ok := r.models[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Compare returns the cached performance of every evaluated model.
func (r *Registry) Compare() map[domain.EmbeddingModel]classification.Performance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[domain.EmbeddingModel]classification.Performance, len(r.models))
	for k, tm := range r.models {
		if tm.performance != nil {
			out[k] = *tm.performance
		}
	}
	return out
}
