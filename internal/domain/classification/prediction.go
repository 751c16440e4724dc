package classification

import "github.com/kailas-cloud/vecsense/internal/domain"

// Pseudo-probability values. The linear model exposes no calibrated
// posterior, so these are a fixed placeholder, not a confidence estimate.
const (
	PredictedProbability = 0.8
	OtherProbability     = 0.1
)

// Prediction is one model's classification of a text.
type Prediction struct {
	Model         domain.EmbeddingModel
	Category      string
	Confidence    float64
	Probabilities map[string]float64
}

// HeuristicProbabilities assigns PredictedProbability to categories[predicted]
// and OtherProbability to every other category.
func HeuristicProbabilities(categories []string, predicted int) map[string]float64 {
	out := make(map[string]float64, len(categories))
	for i, c := range categories {
		if i == predicted {
			out[c] = PredictedProbability
		} else {
			out[c] = OtherProbability
		}
	}
	return out
}

// Consensus is the majority vote across model predictions.
type Consensus struct {
	Category      string
	Votes         int
	TotalModels   int
	Agreement     float64
	AvgConfidence float64
}

// Vote aggregates predictions by majority. Ties go to the category that
// first appeared in the predictions. ok is false for an empty input.
func Vote(predictions []Prediction) (Consensus, bool) {
	if len(predictions) == 0 {
		return Consensus{}, false
	}

	votes := make(map[string]int, len(predictions))
	var order []string
	var totalConfidence float64
	for _, p := range predictions {
		if _, seen := votes[p.Category]; !seen {
			order = append(order, p.Category)
		}
		votes[p.Category]++
		totalConfidence += p.Confidence
	}

	maxVotes := 0
	for _, c := range order {
		maxVotes = max(maxVotes, votes[c])
	}
	var winner string
	for _, c := range order {
		if votes[c] == maxVotes {
			winner = c
			break
		}
	}

	total := len(predictions)
	return Consensus{
		Category:      winner,
		Votes:         maxVotes,
		TotalModels:   total,
		Agreement:     float64(maxVotes) / float64(total),
		AvgConfidence: totalConfidence / float64(total),
	}, true
}
