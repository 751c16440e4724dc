package legal

import "strings"

// Lexical match weights.
const (
	entityWeight  = 1.0
	keywordWeight = 0.5
	sectionWeight = 1.0
)

// EntityMatch scores how many of the document's curated terms appear in the
// query, case-insensitively:
//
//	score = (entities·1 + keywords·0.5 + section·1) / (|entities| + |keywords|·0.5 + 1)
//
// A document without entities scores 0 even when keywords match.
func EntityMatch(query string, doc *Document) float64 {
	totalEntities := len(doc.entities)
	if totalEntities == 0 {
		return 0
	}

	q := strings.ToLower(query)
	var matches float64
	for _, e := range doc.entities {
		if strings.Contains(q, strings.ToLower(e)) {
			matches += entityWeight
		}
	}
	for _, k := range doc.keywords {
		if strings.Contains(q, strings.ToLower(k)) {
			matches += keywordWeight
		}
	}
	if doc.section != "" && strings.Contains(q, strings.ToLower(doc.section)) {
		matches += sectionWeight
	}

	return matches / (float64(totalEntities) + float64(len(doc.keywords))*keywordWeight + 1)
}

// IsRelevant reports whether the document lexically overlaps the query: a
// keyword or entity occurs in the query, or the query occurs in the body.
// Retrieval quality metrics use this as their relevance judgment.
func IsRelevant(query string, doc *Document) bool {
	q := strings.ToLower(query)
	for _, k := range doc.keywords {
		if strings.Contains(q, strings.ToLower(k)) {
			return true
		}
	}
	for _, e := range doc.entities {
		if strings.Contains(q, strings.ToLower(e)) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(doc.content), q)
}
