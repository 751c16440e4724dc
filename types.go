package vecsense

import (
	"time"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
)

// Model names an embedding model.
type Model = domain.EmbeddingModel

// Embedding model constants.
const (
	ModelSentenceBERT  = domain.ModelSentenceBERT
	ModelBERT          = domain.ModelBERT
	ModelWord2VecGloVe = domain.ModelWord2VecGloVe
	ModelGemini        = domain.ModelGemini
)

// Method names a retrieval scoring method.
type Method = method.Method

// Retrieval method constants.
const (
	MethodCosine    = method.Cosine
	MethodEuclidean = method.Euclidean
	MethodMMR       = method.MMR
	MethodHybrid    = method.Hybrid
)

// Models returns every supported embedding model.
func Models() []Model { return domain.AllEmbeddingModels() }

// Methods returns every supported retrieval method.
func Methods() []Method { return method.All() }

// Hit is one ranked legal document.
type Hit struct {
	ID          string
	Title       string
	Category    string
	Section     string
	Score       float64
	Explanation string
}

// SearchReport is the ranked output of one method. Err is set only by
// SearchAll, for a method that failed while its siblings succeeded.
type SearchReport struct {
	Method    Method
	Hits      []Hit
	Precision float64
	Recall    float64
	Diversity float64
	Duration  time.Duration
	Err       error
}

// Performance is a held-out evaluation. Values are fractions in [0,1];
// ConfusionMatrix[actual][predicted] follows Categories order.
type Performance struct {
	Accuracy        float64
	Precision       map[string]float64
	Recall          map[string]float64
	F1              map[string]float64
	ConfusionMatrix [][]int
	Categories      []string
}

// TrainResult summarises one training run.
type TrainResult struct {
	Model               Model
	TrainingSize        int
	TestSize            int
	EmbeddingDimensions int
	Performance         Performance
}

// ModelPrediction is one model's answer. Err is set when the model is
// untrained or failed.
type ModelPrediction struct {
	Model         Model
	Category      string
	Confidence    float64
	Probabilities map[string]float64
	Err           error
}

// Consensus is the majority vote across trained models.
type Consensus struct {
	Category      string
	Votes         int
	TotalModels   int
	Agreement     float64
	AvgConfidence float64
}

// PredictResult holds per-model answers in request order. Consensus is
// nil unless at least two trained models answered.
type PredictResult struct {
	Predictions []ModelPrediction
	Consensus   *Consensus
}
