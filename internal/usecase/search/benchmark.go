package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/vecsense/internal/corpus"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
)

// QueryOutcome is one labelled query's result under one method.
type QueryOutcome struct {
	Query       string
	TopCategory string
	Hit         bool
	Precision   float64
	Recall      float64
}

// BenchmarkReport aggregates one method over the labelled queries.
// Precision and recall here use the labelled relevant ids, not the lexical
// relevance test of Search metrics.
type BenchmarkReport struct {
	Method        method.Method
	Queries       []QueryOutcome
	TopOneHitRate float64
	MeanPrecision float64
	MeanRecall    float64
	MeanLatency   time.Duration
	Err           error
}

// Benchmark runs the labelled evaluation queries through every method
// concurrently. Methods fail independently.
func (s *Service) Benchmark(ctx context.Context, queries []corpus.EvaluationQuery) []BenchmarkReport {
	methods := method.All()
	reports := make([]BenchmarkReport, len(methods))

	var g errgroup.Group
	for i, m := range methods {
		g.Go(func() error {
			reports[i] = s.benchmarkMethod(ctx, m, queries)
			return nil
		})
	}
	_ = g.Wait()
	return reports
}

func (s *Service) benchmarkMethod(ctx context.Context, m method.Method, queries []corpus.EvaluationQuery) BenchmarkReport {
	rep := BenchmarkReport{Method: m, Queries: make([]QueryOutcome, 0, len(queries))}
	if len(queries) == 0 {
		return rep
	}

	var hits int
	var latency time.Duration
	for _, q := range queries {
		r, err := s.Search(ctx, q.Query, s.docs, m, s.cfg.TopK)
		if err != nil {
			s.logger.Warn("Benchmark query failed",
				zap.String("method", string(m)),
				zap.String("query", q.Query),
				zap.Error(err),
			)
			rep.Err = err
			return rep
		}

		out := QueryOutcome{Query: q.Query}
		if len(r.Results) > 0 {
			out.TopCategory = string(r.Results[0].Document().Category())
			out.Hit = out.TopCategory == string(q.ExpectedCategory)
		}
		out.Precision, out.Recall = groundTruth(r.Results, q.RelevantDocIDs)
		if out.Hit {
			hits++
		}
		rep.MeanPrecision += out.Precision
		rep.MeanRecall += out.Recall
		latency += r.Metrics.ExecutionTime
		rep.Queries = append(rep.Queries, out)
	}

	n := float64(len(queries))
	rep.TopOneHitRate = float64(hits) / n
	rep.MeanPrecision /= n
	rep.MeanRecall /= n
	rep.MeanLatency = latency / time.Duration(len(queries))
	return rep
}
