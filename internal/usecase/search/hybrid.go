package search

import (
	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/vector"
)

// Fixed hybrid blend weights.
const (
	hybridVectorWeight  = 0.6
	hybridLexicalWeight = 0.4
)

// HybridScore carries the blended score and its components.
type HybridScore struct {
	Score   float64
	Cosine  float64
	Lexical float64
}

// Hybrid blends cosine similarity of the vectors with the lexical entity
// match of query against doc.
func Hybrid(queryVec, docVec []float64, query string, doc *legal.Document) (HybridScore, error) {
	cos, err := vector.Cosine(queryVec, docVec)
	if err != nil {
		return HybridScore{}, err //nolint:wrapcheck // sentinel already carries context
	}
	lex := legal.EntityMatch(query, doc)
	return HybridScore{
		Score:   hybridVectorWeight*cos + hybridLexicalWeight*lex,
		Cosine:  cos,
		Lexical: lex,
	}, nil
}
