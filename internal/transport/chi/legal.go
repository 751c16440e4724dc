package chi

import (
	"net/http"

	"github.com/kailas-cloud/vecsense/internal/corpus"
	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
	"github.com/kailas-cloud/vecsense/internal/domain/search/result"
	gen "github.com/kailas-cloud/vecsense/internal/transport/generated"
	searchuc "github.com/kailas-cloud/vecsense/internal/usecase/search"
)

type legalDocumentJSON struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Section  string   `json:"section,omitempty"`
	Keywords []string `json:"keywords"`
	Entities []string `json:"entities"`
}

type searchResultJSON struct {
	Document    legalDocumentJSON `json:"document"`
	Score       float64           `json:"score"`
	Method      string            `json:"method"`
	Explanation string            `json:"explanation,omitempty"`
}

type searchMetricsJSON struct {
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	DiversityScore float64 `json:"diversityScore"`
	ExecutionTime  float64 `json:"executionTime"`
}

type methodResultJSON struct {
	Results []searchResultJSON `json:"results,omitempty"`
	Metrics *searchMetricsJSON `json:"metrics,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// LegalSearch handles POST /legal-search.
func (s *Server) LegalSearch(w http.ResponseWriter, r *http.Request) {
	var req gen.LegalSearchJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed, "Query is required and must be a string")
		return
	}

	var methods []method.Method
	if req.Methods != nil && len(*req.Methods) > 0 {
		names := make([]string, len(*req.Methods))
		for i, m := range *req.Methods {
			names[i] = string(m)
		}
		var err error
		if methods, err = method.ParseAll(names); err != nil {
			s.handleDomainError(w, err)
			return
		}
	}

	reports, err := s.search.SearchAll(r.Context(), req.Query, methods)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make(map[string]methodResultJSON, len(reports))
	for _, rep := range reports {
		if rep.Err != nil {
			results[string(rep.Method)] = methodResultJSON{Error: safeDomainMessage(rep.Err)}
			continue
		}
		results[string(rep.Method)] = reportToJSON(rep.Report)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":          req.Query,
		"totalDocuments": len(s.search.Documents()),
		"results":        results,
	})
}

// LegalCatalogue handles GET /legal-search.
func (s *Server) LegalCatalogue(w http.ResponseWriter, _ *http.Request) {
	cat := s.search.Catalogue()

	categories := make([]string, len(cat.Groups))
	byCategory := make(map[string][]map[string]string, len(cat.Groups))
	for i, g := range cat.Groups {
		categories[i] = string(g.Category)
		docs := make([]map[string]string, len(g.Documents))
		for j, d := range g.Documents {
			docs[j] = map[string]string{"id": d.ID, "title": d.Title, "section": d.Section}
		}
		byCategory[string(g.Category)] = docs
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"totalDocuments":      cat.TotalDocuments,
		"categories":          categories,
		"documentsByCategory": byCategory,
		"availableMethods":    cat.Methods,
	})
}

type queryOutcomeJSON struct {
	Query       string  `json:"query"`
	TopCategory string  `json:"topCategory"`
	Hit         bool    `json:"hit"`
	Precision   float64 `json:"precision"`
	Recall      float64 `json:"recall"`
}

type benchmarkJSON struct {
	Method        string             `json:"method"`
	Queries       []queryOutcomeJSON `json:"queries,omitempty"`
	TopOneHitRate float64            `json:"topOneHitRate"`
	MeanPrecision float64            `json:"meanPrecision"`
	MeanRecall    float64            `json:"meanRecall"`
	MeanLatencyMs float64            `json:"meanLatencyMs"`
	Error         string             `json:"error,omitempty"`
}

// LegalBenchmark handles GET /legal-search/benchmark.
func (s *Server) LegalBenchmark(w http.ResponseWriter, r *http.Request) {
	queries := corpus.EvaluationQueries()
	reports := s.search.Benchmark(r.Context(), queries)

	out := make([]benchmarkJSON, len(reports))
	for i, rep := range reports {
		out[i] = benchmarkToJSON(rep)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalQueries": len(queries),
		"methods":      out,
	})
}

func benchmarkToJSON(rep searchuc.BenchmarkReport) benchmarkJSON {
	b := benchmarkJSON{Method: string(rep.Method)}
	if rep.Err != nil {
		b.Error = safeDomainMessage(rep.Err)
		return b
	}
	b.Queries = make([]queryOutcomeJSON, len(rep.Queries))
	for i, q := range rep.Queries {
		b.Queries[i] = queryOutcomeJSON{
			Query:       q.Query,
			TopCategory: q.TopCategory,
			Hit:         q.Hit,
			Precision:   q.Precision,
			Recall:      q.Recall,
		}
	}
	b.TopOneHitRate = rep.TopOneHitRate
	b.MeanPrecision = rep.MeanPrecision
	b.MeanRecall = rep.MeanRecall
	b.MeanLatencyMs = float64(rep.MeanLatency.Microseconds()) / 1000
	return b
}

func reportToJSON(rep result.Report) methodResultJSON {
	items := make([]searchResultJSON, len(rep.Results))
	for i := range rep.Results {
		r := &rep.Results[i]
		items[i] = searchResultJSON{
			Document:    legalDocumentToJSON(r.Document()),
			Score:       r.Score(),
			Method:      string(r.Method()),
			Explanation: r.Explanation(),
		}
	}
	return methodResultJSON{
		Results: items,
		Metrics: &searchMetricsJSON{
			Precision:      rep.Metrics.Precision,
			Recall:         rep.Metrics.Recall,
			DiversityScore: rep.Metrics.DiversityScore,
			ExecutionTime:  rep.Metrics.ExecutionTimeMs(),
		},
	}
}

func legalDocumentToJSON(d *legal.Document) legalDocumentJSON {
	return legalDocumentJSON{
		ID:       d.ID(),
		Title:    d.Title(),
		Content:  d.Content(),
		Category: string(d.Category()),
		Section:  d.Section(),
		Keywords: nonNil(d.Keywords()),
		Entities: nonNil(d.Entities()),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
