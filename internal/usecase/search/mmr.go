package search

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/search/result"
)

// MMRLimit caps the re-ranked list regardless of topK.
const MMRLimit = 5

// DefaultMMRLambda weights relevance against redundancy.
const DefaultMMRLambda = 0.7

// MMR greedily re-ranks candidates by maximal marginal relevance. The first
// pick is the highest base score (first occurrence on ties) and keeps its
// score; every later pick is rescored with λ·relevance − (1−λ)·maxSimilarity
// against the already selected documents.
func MMR(candidates []result.Result, lambda float64) []result.Result {
	if len(candidates) == 0 {
		return nil
	}

	remaining := make([]result.Result, len(candidates))
	copy(remaining, candidates)

	first := 0
	for i := 1; i < len(remaining); i++ {
		if remaining[i].Score() > remaining[first].Score() {
			first = i
		}
	}
	selected := make([]result.Result, 0, min(MMRLimit, len(candidates)))
	selected = append(selected, remaining[first])
	remaining = removeAt(remaining, first)

	for len(selected) < MMRLimit && len(remaining) > 0 {
		best := -1
		bestScore := math.Inf(-1)
		for i := range remaining {
			score := lambda*remaining[i].Score() - (1-lambda)*maxSimilarity(&remaining[i], selected)
			if score > bestScore {
				best, bestScore = i, score
			}
		}

		pick := remaining[best]
		selected = append(selected, pick.WithScore(
			bestScore,
			fmt.Sprintf("MMR Score: %.3f (Relevance: %.3f)", bestScore, pick.Score()),
		))
		remaining = removeAt(remaining, best)
	}
	return selected
}

func maxSimilarity(candidate *result.Result, selected []result.Result) float64 {
	var peak float64
	for i := range selected {
		peak = math.Max(peak, legal.Similarity(candidate.Document(), selected[i].Document()))
	}
	return peak
}

func removeAt(rs []result.Result, i int) []result.Result {
	return append(rs[:i], rs[i+1:]...)
}
