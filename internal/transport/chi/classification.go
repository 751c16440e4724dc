package chi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/classification"
	gen "github.com/kailas-cloud/vecsense/internal/transport/generated"
	classifyuc "github.com/kailas-cloud/vecsense/internal/usecase/classify"
)

type performanceJSON struct {
	Accuracy        float64            `json:"accuracy"`
	Precision       map[string]float64 `json:"precision"`
	Recall          map[string]float64 `json:"recall"`
	F1Score         map[string]float64 `json:"f1Score"`
	ConfusionMatrix [][]int            `json:"confusionMatrix"`
}

type performanceSummaryJSON struct {
	Accuracy     float64 `json:"accuracy"`
	AvgPrecision float64 `json:"avgPrecision"`
	AvgRecall    float64 `json:"avgRecall"`
	AvgF1Score   float64 `json:"avgF1Score"`
}

// TrainClassifier handles POST /classification/train.
func (s *Server) TrainClassifier(w http.ResponseWriter, r *http.Request) {
	var req gen.TrainClassifierJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	model, err := domain.ParseEmbeddingModel(string(req.EmbeddingModel))
	if err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeUnsupportedModel,
			"Invalid embedding model. Must be one of: "+joinModels(domain.AllEmbeddingModels()))
		return
	}
	split := defaultTrainTestSplit
	if req.TestSplit != nil {
		split = *req.TestSplit
		if split <= 0 || split >= 1 {
			writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed,
				"testSplit must be between 0 and 1 (exclusive)")
			return
		}
	}

	rep, err := s.classify.Train(r.Context(), model, split)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"model":               rep.Model,
		"trainingSize":        rep.TrainingSize,
		"testSize":            rep.TestSize,
		"embeddingDimensions": rep.EmbeddingDimensions,
		"performance":         performanceToJSON(rep.Performance),
		"categories":          s.classify.Registry().Categories(),
	})
}

// TrainingStatus handles GET /classification/train.
func (s *Server) TrainingStatus(w http.ResponseWriter, _ *http.Request) {
	categories := s.classify.Registry().Categories()
	trained := make(map[string]any)
	for _, st := range s.classify.Status() {
		if !st.Trained {
			continue
		}
		trained[string(st.Model)] = map[string]any{
			"trained":     true,
			"categories":  categories,
			"performance": summaryToJSON(st),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"availableModels":  domain.AllEmbeddingModels(),
		"trainedModels":    trained,
		"trainingDataSize": s.classify.TrainingDataSize(),
		"categories":       categories,
	})
}

type predictionJSON struct {
	Model               string             `json:"model"`
	PredictedCategory   string             `json:"predictedCategory,omitempty"`
	Confidence          float64            `json:"confidence,omitempty"`
	Probabilities       map[string]float64 `json:"probabilities,omitempty"`
	EmbeddingDimensions int                `json:"embeddingDimensions,omitempty"`
	Error               string             `json:"error,omitempty"`
	Trained             bool               `json:"trained"`
}

type consensusJSON struct {
	Category      string  `json:"category"`
	Votes         int     `json:"votes"`
	TotalModels   int     `json:"totalModels"`
	Agreement     float64 `json:"agreement"`
	AvgConfidence float64 `json:"avgConfidence"`
}

// Predict handles POST /classification/predict. Unknown model names are
// dropped from the request rather than rejected.
func (s *Server) Predict(w http.ResponseWriter, r *http.Request) {
	var req gen.PredictJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed, "Text is required and must be a non-empty string")
		return
	}

	models := domain.AllEmbeddingModels()
	if req.Models != nil {
		models = knownModels(*req.Models)
	}

	var rep classifyuc.PredictReport
	if len(models) > 0 {
		var err error
		rep, err = s.classify.Predict(r.Context(), req.Text, models)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
	}

	predictions := make([]predictionJSON, len(rep.Outcomes))
	answered := 0
	for i, o := range rep.Outcomes {
		predictions[i] = outcomeToJSON(o)
		if o.Trained && o.Err == nil {
			answered++
		}
	}

	var consensus *consensusJSON
	if rep.Consensus != nil {
		c := rep.Consensus
		consensus = &consensusJSON{
			Category:      c.Category,
			Votes:         c.Votes,
			TotalModels:   c.TotalModels,
			Agreement:     classification.Percent(c.Agreement),
			AvgConfidence: classification.Percent(c.AvgConfidence),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"text":            preview(req.Text),
		"predictions":     predictions,
		"consensus":       consensus,
		"modelsRequested": models,
		"modelsProcessed": len(predictions),
		"trainedModels":   answered,
	})
}

// PredictionStatus handles GET /classification/predict.
func (s *Server) PredictionStatus(w http.ResponseWriter, _ *http.Request) {
	statuses := s.classify.Status()
	modelStatus := make([]map[string]any, len(statuses))
	totalTrained := 0
	for i, st := range statuses {
		if st.Trained {
			totalTrained++
		}
		modelStatus[i] = map[string]any{
			"model":       st.Model,
			"trained":     st.Trained,
			"performance": summaryToJSON(st),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"availableModels": domain.AllEmbeddingModels(),
		"modelStatus":     modelStatus,
		"totalTrained":    totalTrained,
		"usage": map[string]any{
			"endpoint": "/classification/predict",
			"method":   http.MethodPost,
			"body": map[string]any{
				"text":   "Article text to classify",
				"models": domain.AllEmbeddingModels(),
			},
		},
	})
}

func outcomeToJSON(o classifyuc.ModelOutcome) predictionJSON {
	p := predictionJSON{Model: string(o.Model), Trained: o.Trained}
	if o.Err != nil {
		p.Error = safeDomainMessage(o.Err)
		return p
	}
	p.PredictedCategory = o.Prediction.Category
	p.Confidence = classification.Percent(o.Prediction.Confidence)
	p.Probabilities = classification.PercentMap(o.Prediction.Probabilities)
	p.EmbeddingDimensions = o.EmbeddingDimensions
	return p
}

func performanceToJSON(p classification.Performance) performanceJSON {
	return performanceJSON{
		Accuracy:        classification.Percent(p.Accuracy),
		Precision:       classification.PercentMap(p.Precision),
		Recall:          classification.PercentMap(p.Recall),
		F1Score:         classification.PercentMap(p.F1),
		ConfusionMatrix: p.ConfusionMatrix,
	}
}

// summaryToJSON returns nil for a model without a held-out evaluation.
func summaryToJSON(st classifyuc.ModelStatus) *performanceSummaryJSON {
	if !st.Evaluated {
		return nil
	}
	return &performanceSummaryJSON{
		Accuracy:     classification.Percent(st.Accuracy),
		AvgPrecision: classification.Percent(st.AvgPrecision),
		AvgRecall:    classification.Percent(st.AvgRecall),
		AvgF1Score:   classification.Percent(st.AvgF1),
	}
}

func knownModels(names []gen.EmbeddingModel) []domain.EmbeddingModel {
	out := make([]domain.EmbeddingModel, 0, len(names))
	for _, n := range names {
		m := domain.EmbeddingModel(n)
		if m.IsValid() && !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}

func joinModels(models []domain.EmbeddingModel) string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= predictTextPreviewSize {
		return text
	}
	return string(runes[:predictTextPreviewSize]) + "..."
}
