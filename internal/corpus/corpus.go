// Package corpus embeds the static reference data served by retrieval and
// used to train the classifiers.
package corpus

import (
	"slices"

	"github.com/kailas-cloud/vecsense/internal/domain/article"
	"github.com/kailas-cloud/vecsense/internal/domain/legal"
)

// EvaluationQuery is a labelled retrieval query with ground-truth relevance.
type EvaluationQuery struct {
	Query            string
	ExpectedCategory legal.Category
	RelevantDocIDs   []string
}

var evaluationQueries = []EvaluationQuery{
	{Query: "Income tax deduction for education", ExpectedCategory: legal.IncomeTax, RelevantDocIDs: []string{"it_001", "it_004"}},
	{Query: "GST rate for textile products", ExpectedCategory: legal.GST, RelevantDocIDs: []string{"gst_001"}},
	{Query: "Property registration process", ExpectedCategory: legal.PropertyLaw, RelevantDocIDs: []string{"pl_001", "pl_004"}},
	{Query: "Court fee structure", ExpectedCategory: legal.CourtJudgment, RelevantDocIDs: []string{"cj_001"}},
}

// LegalCategories is the display order of legal categories.
var LegalCategories = []legal.Category{legal.IncomeTax, legal.GST, legal.CourtJudgment, legal.PropertyLaw}

// LegalDocuments returns a copy of the legal corpus.
func LegalDocuments() []legal.Document {
	return slices.Clone(legalDocuments)
}

// TrainingArticles returns a copy of the classification corpus.
func TrainingArticles() []article.Article {
	return slices.Clone(trainingArticles)
}

// EvaluationQueries returns the labelled retrieval queries.
func EvaluationQueries() []EvaluationQuery {
	out := make([]EvaluationQuery, len(evaluationQueries))
	for i, q := range evaluationQueries {
		q.RelevantDocIDs = slices.Clone(q.RelevantDocIDs)
		out[i] = q
	}
	return out
}
