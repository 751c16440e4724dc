package search

import (
	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/search/result"
)

// Precision is the fraction of results lexically relevant to the query.
// An empty result list scores 0.
func Precision(query string, results []result.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	relevant := 0
	for i := range results {
		if legal.IsRelevant(query, results[i].Document()) {
			relevant++
		}
	}
	return float64(relevant) / float64(len(results))
}

// Recall is the share of lexically relevant documents in corpus that appear
// in results. With no relevant documents at all recall is 1 by convention.
func Recall(query string, results []result.Result, corpus []legal.Document) float64 {
	relevant := make(map[string]struct{})
	for i := range corpus {
		if legal.IsRelevant(query, &corpus[i]) {
			relevant[corpus[i].ID()] = struct{}{}
		}
	}
	if len(relevant) == 0 {
		return 1
	}
	found := 0
	for i := range results {
		if _, ok := relevant[results[i].Document().ID()]; ok {
			found++
		}
	}
	return float64(found) / float64(len(relevant))
}

// Diversity is 1 minus the mean pairwise document similarity. Lists of one
// or zero results are fully diverse.
func Diversity(results []result.Result) float64 {
	if len(results) <= 1 {
		return 1
	}
	var total float64
	pairs := 0
	for i := range results {
		for j := i + 1; j < len(results); j++ {
			total += legal.Similarity(results[i].Document(), results[j].Document())
			pairs++
		}
	}
	return 1 - total/float64(pairs)
}

// groundTruth measures results against labelled relevant ids.
func groundTruth(results []result.Result, relevantIDs []string) (precision, recall float64) {
	if len(relevantIDs) == 0 {
		return 0, 1
	}
	want := make(map[string]struct{}, len(relevantIDs))
	for _, id := range relevantIDs {
		want[id] = struct{}{}
	}
	hits := 0
	for i := range results {
		if _, ok := want[results[i].Document().ID()]; ok {
			hits++
		}
	}
	if len(results) > 0 {
		precision = float64(hits) / float64(len(results))
	}
	return precision, float64(hits) / float64(len(want))
}
