package legal

// Document-to-document similarity weights.
const (
	categoryWeight   = 0.3
	keywordSetWeight = 0.4
	entitySetWeight  = 0.3
)

// Similarity compares two documents by metadata only:
// 0.3·[same category] + 0.4·overlap(keywords) + 0.3·overlap(entities).
// The result lies in [0,1].
func Similarity(a, b *Document) float64 {
	var s float64
	if a.category == b.category {
		s += categoryWeight
	}
	s += keywordSetWeight * overlap(a.keywords, b.keywords)
	s += entitySetWeight * overlap(a.entities, b.entities)
	return s
}

// overlap is |A∩B| / max(|A|,|B|), exact string match.
// Two empty sets contribute 0 rather than 0/0.
func overlap(a, b []string) float64 {
	denom := max(len(a), len(b))
	if denom == 0 {
		return 0
	}
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}
	common := 0
	for _, s := range a {
		if _, ok := inB[s]; ok {
			common++
		}
	}
	return float64(common) / float64(denom)
}
