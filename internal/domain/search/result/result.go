package result

import (
	"time"

	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
)

// Result is a single ranked document.
type Result struct {
	document    *legal.Document
	score       float64
	method      method.Method
	explanation string
}

// New creates a search result.
func New(doc *legal.Document, score float64, m method.Method, explanation string) Result {
	return Result{document: doc, score: score, method: m, explanation: explanation}
}

// Document returns the ranked document.
func (r *Result) Document() *legal.Document { return r.document }

// Score returns the method-specific score.
func (r *Result) Score() float64 { return r.score }

// Method returns the method that produced the score.
func (r *Result) Method() method.Method { return r.method }

// Explanation returns the score breakdown, if any.
func (r *Result) Explanation() string { return r.explanation }

// WithScore returns a copy carrying a new score and explanation.
func (r Result) WithScore(score float64, explanation string) Result {
	r.score = score
	r.explanation = explanation
	return r
}

// Metrics describes the quality of one ranked list.
type Metrics struct {
	Precision      float64
	Recall         float64
	DiversityScore float64
	ExecutionTime  time.Duration
}

// ExecutionTimeMs returns the wall-clock duration in milliseconds.
func (m Metrics) ExecutionTimeMs() float64 {
	return float64(m.ExecutionTime) / float64(time.Millisecond)
}

// Report is the output of one method run.
type Report struct {
	Method  method.Method
	Results []Result
	Metrics Metrics
}
