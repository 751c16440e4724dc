// Package classify trains and serves one article classifier per embedding
// model.
package classify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/article"
	"github.com/kailas-cloud/vecsense/internal/domain/classification"
	"github.com/kailas-cloud/vecsense/internal/metrics"
)

// DefaultTestSplit is the held-out fraction used when none is given.
const DefaultTestSplit = 0.2

// Config tunes training.
type Config struct {
	TestSplit float64
	// Seed drives the train/test shuffle; equal seeds give equal splits.
	Seed uint64
}

// Service trains classifiers on the article corpus and predicts categories.
type Service struct {
	articles []article.Article
	embed    Embedder
	registry *Registry
	cfg      Config
	logger   *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a classification service.
func New(articles []article.Article, embed Embedder, registry *Registry, cfg Config, logger *zap.Logger) *Service {
	if cfg.TestSplit <= 0 || cfg.TestSplit >= 1 {
		cfg.TestSplit = DefaultTestSplit
	}
	return &Service{
		articles: articles,
		embed:    embed,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		rng:      rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)), //nolint:gosec // shuffle, not crypto
	}
}

// Registry exposes the underlying registry.
func (s *Service) Registry() *Registry { return s.registry }

// TrainReport summarises one training run.
type TrainReport struct {
	Model               domain.EmbeddingModel
	TrainingSize        int
	TestSize            int
	EmbeddingDimensions int
	Performance         classification.Performance
}

// Train shuffles the corpus, splits off testSplit for evaluation, trains
// the classifier for model and evaluates it. A zero testSplit uses the
// configured default.
func (s *Service) Train(ctx context.Context, model domain.EmbeddingModel, testSplit float64) (TrainReport, error) {
	if !model.IsValid() {
		return TrainReport{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedModel, model)
	}
	if testSplit == 0 {
		testSplit = s.cfg.TestSplit
	}
	if testSplit <= 0 || testSplit >= 1 || math.IsNaN(testSplit) {
		return TrainReport{}, fmt.Errorf("%w: test split must be in (0,1), got %v", domain.ErrInvalidInput, testSplit)
	}

	shuffled := s.shuffled()
	split := int(math.Floor(float64(len(shuffled)) * (1 - testSplit)))
	train, test := shuffled[:split], shuffled[split:]

	trainVecs, trainLabels, err := s.embedArticles(ctx, train, model)
	if err != nil {
		return TrainReport{}, err
	}
	testVecs, testLabels, err := s.embedArticles(ctx, test, model)
	if err != nil {
		return TrainReport{}, err
	}
	perf, err := s.registry.TrainAndEvaluate(model, trainVecs, trainLabels, testVecs, testLabels)
	if err != nil {
		return TrainReport{}, &domain.ModelError{Model: model, Err: err}
	}

	rep := TrainReport{
		Model:        model,
		TrainingSize: len(train),
		TestSize:     len(test),
		Performance:  perf,
	}
	if len(trainVecs) > 0 {
		rep.EmbeddingDimensions = len(trainVecs[0])
	}

	s.logger.Info("Classifier evaluated",
		zap.String("model", string(model)),
		zap.Int("train", rep.TrainingSize),
		zap.Int("test", rep.TestSize),
		zap.Float64("accuracy", perf.Accuracy),
	)
	return rep, nil
}

func (s *Service) shuffled() []article.Article {
	out := make([]article.Article, len(s.articles))
	copy(out, s.articles)
	s.rngMu.Lock()
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	s.rngMu.Unlock()
	return out
}

func (s *Service) embedArticles(
	ctx context.Context, arts []article.Article, model domain.EmbeddingModel,
) ([][]float64, []string, error) {
	texts := make([]string, len(arts))
	labels := make([]string, len(arts))
	for i, a := range arts {
		texts[i] = a.Text()
		labels[i] = string(a.Category)
	}
	embs, err := domain.EmbedAll(ctx, s.embed, texts, model)
	if err != nil {
		return nil, nil, &domain.ModelError{Model: model, Err: embeddingFailure(err)}
	}
	vecs := make([][]float64, len(embs))
	for i, e := range embs {
		vecs[i] = e.Vector
	}
	return vecs, labels, nil
}

func embeddingFailure(err error) error {
	if errors.Is(err, domain.ErrEmbeddingFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
}

// ModelOutcome is one model's answer to a prediction request. Trained
// distinguishes a model that was never trained from one that failed this
// call.
type ModelOutcome struct {
	Model               domain.EmbeddingModel
	Trained             bool
	Prediction          classification.Prediction
	EmbeddingDimensions int
	Err                 error
}

// PredictReport holds per-model outcomes in request order, plus a
// consensus when at least two trained models answered.
type PredictReport struct {
	Outcomes  []ModelOutcome
	Consensus *classification.Consensus
}

// Predict classifies text with every requested model in parallel. An empty
// models list means all models.
func (s *Service) Predict(ctx context.Context, text string, models []domain.EmbeddingModel) (PredictReport, error) {
	if strings.TrimSpace(text) == "" {
		return PredictReport{}, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	if len(models) == 0 {
		models = domain.AllEmbeddingModels()
	}
	for _, m := range models {
		if !m.IsValid() {
			return PredictReport{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedModel, m)
		}
	}

	outcomes := make([]ModelOutcome, len(models))
	var g errgroup.Group
	for i, m := range models {
		g.Go(func() error {
			outcomes[i] = s.predictOne(ctx, text, m)
			return nil
		})
	}
	_ = g.Wait()

	rep := PredictReport{Outcomes: outcomes}
	var votes []classification.Prediction
	for _, o := range outcomes {
		if o.Trained && o.Err == nil {
			votes = append(votes, o.Prediction)
		}
	}
	if len(votes) >= 2 {
		if c, ok := classification.Vote(votes); ok {
			rep.Consensus = &c
		}
	}
	return rep, nil
}

func (s *Service) predictOne(ctx context.Context, text string, model domain.EmbeddingModel) ModelOutcome {
	if !s.registry.IsTrained(model) {
		metrics.ClassifierPredictionsTotal.WithLabelValues(string(model), "untrained").Inc()
		return ModelOutcome{Model: model, Err: domain.NewModelNotTrained(model)}
	}

	emb, err := s.embed.Embed(ctx, text, model)
	if err != nil {
		metrics.ClassifierPredictionsTotal.WithLabelValues(string(model), "error").Inc()
		s.logger.Warn("Prediction embedding failed",
			zap.String("model", string(model)),
			zap.Error(err),
		)
		return ModelOutcome{Model: model, Trained: true, Err: &domain.ModelError{Model: model, Err: embeddingFailure(err)}}
	}

	p, err := s.registry.Predict(model, emb.Vector)
	if err != nil {
		metrics.ClassifierPredictionsTotal.WithLabelValues(string(model), "error").Inc()
		return ModelOutcome{
			Model:   model,
			Trained: !errors.Is(err, domain.ErrModelNotTrained),
			Err:     &domain.ModelError{Model: model, Err: err},
		}
	}
	metrics.ClassifierPredictionsTotal.WithLabelValues(string(model), "ok").Inc()
	return ModelOutcome{Model: model, Trained: true, Prediction: p, EmbeddingDimensions: emb.Dimensions()}
}

// ModelStatus summarises one model for status listings.
type ModelStatus struct {
	Model        domain.EmbeddingModel
	Trained      bool
	Evaluated    bool
	Accuracy     float64
	AvgPrecision float64
	AvgRecall    float64
	AvgF1        float64
}

// Status reports every known model in canonical order.
func (s *Service) Status() []ModelStatus {
	models := domain.AllEmbeddingModels()
	out := make([]ModelStatus, len(models))
	for i, m := range models {
		st := ModelStatus{Model: m, Trained: s.registry.IsTrained(m)}
		if perf, ok := s.registry.Performance(m); ok {
			st.Evaluated = true
			st.Accuracy = perf.Accuracy
			st.AvgPrecision, st.AvgRecall, st.AvgF1 = perf.MacroAverages()
		}
		out[i] = st
	}
	return out
}

// TrainingDataSize returns the corpus size.
func (s *Service) TrainingDataSize() int { return len(s.articles) }
