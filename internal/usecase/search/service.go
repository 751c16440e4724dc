package search

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
	"github.com/kailas-cloud/vecsense/internal/domain/search/result"
	"github.com/kailas-cloud/vecsense/internal/domain/vector"
	"github.com/kailas-cloud/vecsense/internal/metrics"
)

// DefaultTopK is the result count for non-MMR methods.
const DefaultTopK = 5

// Config tunes the retrieval service.
type Config struct {
	// Model embeds both the query and every document.
	Model     domain.EmbeddingModel
	TopK      int
	MMRLambda float64
	// Methods run when a request names none. Empty means all.
	Methods []method.Method
}

// DefaultConfig uses sentence-bert, top 5 and λ = 0.7.
func DefaultConfig() Config {
	return Config{Model: domain.ModelSentenceBERT, TopK: DefaultTopK, MMRLambda: DefaultMMRLambda}
}

// Service ranks the legal corpus with the supported retrieval methods.
// Every run re-embeds every document; wrap the Embedder with a cache to
// avoid that.
type Service struct {
	docs   []legal.Document
	embed  Embedder
	cfg    Config
	logger *zap.Logger
}

// New creates a retrieval service over docs.
func New(docs []legal.Document, embed Embedder, cfg Config, logger *zap.Logger) *Service {
	if cfg.Model == "" {
		cfg.Model = domain.ModelSentenceBERT
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.MMRLambda <= 0 || cfg.MMRLambda > 1 {
		cfg.MMRLambda = DefaultMMRLambda
	}
	return &Service{docs: docs, embed: embed, cfg: cfg, logger: logger}
}

func (s *Service) defaultMethods() []method.Method {
	if len(s.cfg.Methods) == 0 {
		return method.All()
	}
	return slices.Clone(s.cfg.Methods)
}

// Documents returns the served corpus.
func (s *Service) Documents() []legal.Document { return s.docs }

// Search ranks docs against query with one method. MMR ignores topK and
// returns at most MMRLimit results. Embedding failures abort the run with
// ErrEmbeddingFailure.
func (s *Service) Search(
	ctx context.Context, query string, docs []legal.Document, m method.Method, topK int,
) (result.Report, error) {
	start := time.Now()
	if strings.TrimSpace(query) == "" {
		return result.Report{}, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	if !m.IsValid() {
		return result.Report{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, m)
	}
	if topK <= 0 {
		topK = s.cfg.TopK
	}

	scored, err := s.score(ctx, query, docs, m)
	if err != nil {
		metrics.SearchFailuresTotal.WithLabelValues(string(m)).Inc()
		return result.Report{}, &domain.MethodError{Method: string(m), Err: err}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score() > scored[j].Score()
	})

	var final []result.Result
	if m == method.MMR {
		final = MMR(scored, s.cfg.MMRLambda)
	} else {
		final = scored[:min(topK, len(scored))]
	}

	elapsed := time.Since(start)
	metrics.ObserveSearch(string(m), elapsed, len(final))

	return result.Report{
		Method:  m,
		Results: final,
		Metrics: result.Metrics{
			Precision:      Precision(query, final),
			Recall:         Recall(query, final, docs),
			DiversityScore: Diversity(final),
			ExecutionTime:  elapsed,
		},
	}, nil
}

func (s *Service) score(
	ctx context.Context, query string, docs []legal.Document, m method.Method,
) ([]result.Result, error) {
	q, err := s.embed.Embed(ctx, query, s.cfg.Model)
	if err != nil {
		return nil, embeddingFailure("query", err)
	}

	scored := make([]result.Result, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		d, err := s.embed.Embed(ctx, doc.Text(), s.cfg.Model)
		if err != nil {
			return nil, embeddingFailure("document "+doc.ID(), err)
		}

		r, err := scoreDocument(m, query, q.Vector, d.Vector, doc)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", doc.ID(), err)
		}
		scored = append(scored, r)
	}
	return scored, nil
}

func scoreDocument(m method.Method, query string, queryVec, docVec []float64, doc *legal.Document) (result.Result, error) {
	switch m {
	case method.Cosine:
		score, err := vector.Cosine(queryVec, docVec)
		if err != nil {
			return result.Result{}, err //nolint:wrapcheck // sentinel already carries context
		}
		return result.New(doc, score, m, fmt.Sprintf("Cosine similarity: %.3f", score)), nil
	case method.Euclidean:
		score, err := vector.Euclidean(queryVec, docVec)
		if err != nil {
			return result.Result{}, err //nolint:wrapcheck // sentinel already carries context
		}
		return result.New(doc, score, m, fmt.Sprintf("Euclidean similarity: %.3f", score)), nil
	case method.Hybrid:
		h, err := Hybrid(queryVec, docVec, query, doc)
		if err != nil {
			return result.Result{}, err
		}
		return result.New(doc, h.Score, m,
			fmt.Sprintf("Hybrid: %.3f (Cosine: %.3f, Entity: %.3f)", h.Score, h.Cosine, h.Lexical)), nil
	case method.MMR:
		// Base relevance for re-ranking is plain cosine.
		score, err := vector.Cosine(queryVec, docVec)
		if err != nil {
			return result.Result{}, err //nolint:wrapcheck // sentinel already carries context
		}
		return result.New(doc, score, m, fmt.Sprintf("Base relevance: %.3f", score)), nil
	default:
		return result.Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, m)
	}
}

func embeddingFailure(what string, err error) error {
	if errors.Is(err, domain.ErrEmbeddingFailure) {
		return fmt.Errorf("embed %s: %w", what, err)
	}
	return fmt.Errorf("embed %s: %w: %w", what, domain.ErrEmbeddingFailure, err)
}

// MethodReport is the outcome of one method in a multi-method run.
// Exactly one of Report and Err is meaningful.
type MethodReport struct {
	Method method.Method
	Report result.Report
	Err    error
}

// SearchAll runs every requested method concurrently over the configured
// corpus. A failing method is reported in its slot without affecting the
// others. Reports follow the order of methods; an empty list means the
// configured default set.
func (s *Service) SearchAll(ctx context.Context, query string, methods []method.Method) ([]MethodReport, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	if len(methods) == 0 {
		methods = s.defaultMethods()
	}
	for _, m := range methods {
		if !m.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, m)
		}
	}

	reports := make([]MethodReport, len(methods))
	var g errgroup.Group
	for i, m := range methods {
		g.Go(func() error {
			rep, err := s.Search(ctx, query, s.docs, m, s.cfg.TopK)
			reports[i] = MethodReport{Method: m, Report: rep, Err: err}
			if err != nil {
				s.logger.Warn("Search method failed",
					zap.String("method", string(m)),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return reports, nil
}
