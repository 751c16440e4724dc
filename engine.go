package vecsense

import (
	"context"
	"fmt"
	"maps"
	"math"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecsense/internal/corpus"
	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/article"
	"github.com/kailas-cloud/vecsense/internal/domain/classification"
	"github.com/kailas-cloud/vecsense/internal/domain/search/result"
	"github.com/kailas-cloud/vecsense/internal/ml/linear"
	"github.com/kailas-cloud/vecsense/internal/transport/hashing"
	classifyuc "github.com/kailas-cloud/vecsense/internal/usecase/classify"
	searchuc "github.com/kailas-cloud/vecsense/internal/usecase/search"
)

// Engine is the vecsense entry point. It is safe for concurrent use.
type Engine struct {
	search   *searchuc.Service
	classify *classifyuc.Service
	topK     int
}

// New builds an Engine over the bundled legal and training corpora.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, o := range opts {
		o.apply(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var emb domain.Embedder
	if cfg.embedder != nil {
		emb = &embedderAdapter{inner: cfg.embedder}
	} else {
		h, err := hashing.New(cfg.hashDims)
		if err != nil {
			return nil, fmt.Errorf("vecsense: %w", err)
		}
		emb = h
	}

	searchSvc := searchuc.New(corpus.LegalDocuments(), emb, searchuc.Config{
		Model:     cfg.searchWith,
		TopK:      cfg.topK,
		MMRLambda: cfg.mmrLambda,
	}, cfg.logger)

	lin := linear.Config{Iterations: cfg.iterations, LearningRate: cfg.learningRate}
	registry := classifyuc.NewRegistry(article.CategoryNames(), lin.Factory(), cfg.logger)
	classifySvc := classifyuc.New(corpus.TrainingArticles(), emb, registry, classifyuc.Config{
		TestSplit: cfg.testSplit,
		Seed:      cfg.seed,
	}, cfg.logger)

	cfg.logger.Debug("vecsense engine ready",
		zap.String("search_model", string(cfg.searchWith)),
		zap.Int("top_k", cfg.topK),
		zap.Float64("mmr_lambda", cfg.mmrLambda),
	)
	return &Engine{search: searchSvc, classify: classifySvc, topK: cfg.topK}, nil
}

func (c *engineConfig) validate() error {
	if !c.searchWith.IsValid() {
		return fmt.Errorf("vecsense: %w: %q", domain.ErrUnsupportedModel, c.searchWith)
	}
	if c.embedder == nil && c.hashDims <= 0 {
		return fmt.Errorf("vecsense: %w: hashing dimensions must be positive", domain.ErrInvalidInput)
	}
	if c.topK <= 0 {
		return fmt.Errorf("vecsense: %w: top k must be positive", domain.ErrInvalidInput)
	}
	if c.mmrLambda <= 0 || c.mmrLambda > 1 || math.IsNaN(c.mmrLambda) {
		return fmt.Errorf("vecsense: %w: mmr lambda must be in (0,1]", domain.ErrInvalidInput)
	}
	if c.testSplit <= 0 || c.testSplit >= 1 || math.IsNaN(c.testSplit) {
		return fmt.Errorf("vecsense: %w: test split must be in (0,1)", domain.ErrInvalidInput)
	}
	lin := linear.Config{Iterations: c.iterations, LearningRate: c.learningRate}
	if err := lin.Validate(); err != nil {
		return fmt.Errorf("vecsense: %w", err)
	}
	return nil
}

// Search ranks the legal corpus against query with one method.
func (e *Engine) Search(ctx context.Context, query string, m Method) (SearchReport, error) {
	if !m.IsValid() {
		return SearchReport{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, m)
	}
	rep, err := e.search.Search(ctx, query, e.search.Documents(), m, e.topK)
	if err != nil {
		return SearchReport{}, fmt.Errorf("search %s: %w", m, err)
	}
	return fromReport(rep), nil
}

// SearchAll runs methods concurrently; none means all. A method that fails
// is reported through its SearchReport.Err.
func (e *Engine) SearchAll(ctx context.Context, query string, methods ...Method) ([]SearchReport, error) {
	reports, err := e.search.SearchAll(ctx, query, methods)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	out := make([]SearchReport, len(reports))
	for i, r := range reports {
		if r.Err != nil {
			out[i] = SearchReport{Method: r.Method, Err: r.Err}
			continue
		}
		out[i] = fromReport(r.Report)
	}
	return out, nil
}

// Train fits and evaluates the classifier for model, replacing any
// previous one.
func (e *Engine) Train(ctx context.Context, model Model) (TrainResult, error) {
	rep, err := e.classify.Train(ctx, model, 0)
	if err != nil {
		return TrainResult{}, fmt.Errorf("train: %w", err)
	}
	return TrainResult{
		Model:               rep.Model,
		TrainingSize:        rep.TrainingSize,
		TestSize:            rep.TestSize,
		EmbeddingDimensions: rep.EmbeddingDimensions,
		Performance:         fromPerformance(rep.Performance, e.classify.Registry().Categories()),
	}, nil
}

// Predict classifies text with each model; none means all.
func (e *Engine) Predict(ctx context.Context, text string, models ...Model) (PredictResult, error) {
	rep, err := e.classify.Predict(ctx, text, models)
	if err != nil {
		return PredictResult{}, fmt.Errorf("predict: %w", err)
	}
	out := PredictResult{Predictions: make([]ModelPrediction, len(rep.Outcomes))}
	for i, o := range rep.Outcomes {
		p := ModelPrediction{Model: o.Model, Err: o.Err}
		if o.Err == nil {
			p.Category = o.Prediction.Category
			p.Confidence = o.Prediction.Confidence
			p.Probabilities = maps.Clone(o.Prediction.Probabilities)
		}
		out.Predictions[i] = p
	}
	if c := rep.Consensus; c != nil {
		out.Consensus = &Consensus{
			Category:      c.Category,
			Votes:         c.Votes,
			TotalModels:   c.TotalModels,
			Agreement:     c.Agreement,
			AvgConfidence: c.AvgConfidence,
		}
	}
	return out, nil
}

// Performance returns the latest evaluation of model, if it was trained.
func (e *Engine) Performance(model Model) (Performance, bool) {
	reg := e.classify.Registry()
	perf, ok := reg.Performance(model)
	if !ok {
		return Performance{}, false
	}
	return fromPerformance(perf, reg.Categories()), true
}

// Compare returns the latest evaluation of every evaluated model.
func (e *Engine) Compare() map[Model]Performance {
	reg := e.classify.Registry()
	categories := reg.Categories()
	all := reg.Compare()
	out := make(map[Model]Performance, len(all))
	for m, p := range all {
		out[m] = fromPerformance(p, categories)
	}
	return out
}

// Trained lists the models with a fitted classifier.
func (e *Engine) Trained() []Model {
	return e.classify.Registry().ListTrained()
}

func fromReport(rep result.Report) SearchReport {
	hits := make([]Hit, len(rep.Results))
	for i := range rep.Results {
		r := &rep.Results[i]
		d := r.Document()
		hits[i] = Hit{
			ID:          d.ID(),
			Title:       d.Title(),
			Category:    string(d.Category()),
			Section:     d.Section(),
			Score:       r.Score(),
			Explanation: r.Explanation(),
		}
	}
	return SearchReport{
		Method:    rep.Method,
		Hits:      hits,
		Precision: rep.Metrics.Precision,
		Recall:    rep.Metrics.Recall,
		Diversity: rep.Metrics.DiversityScore,
		Duration:  rep.Metrics.ExecutionTime,
	}
}

func fromPerformance(p classification.Performance, categories []string) Performance {
	matrix := make([][]int, len(p.ConfusionMatrix))
	for i, row := range p.ConfusionMatrix {
		matrix[i] = append([]int(nil), row...)
	}
	return Performance{
		Accuracy:        p.Accuracy,
		Precision:       maps.Clone(p.Precision),
		Recall:          maps.Clone(p.Recall),
		F1:              maps.Clone(p.F1),
		ConfusionMatrix: matrix,
		Categories:      categories,
	}
}
