package search

import (
	"github.com/kailas-cloud/vecsense/internal/domain/legal"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
)

// DocumentSummary is the catalogue view of a document.
type DocumentSummary struct {
	ID      string
	Title   string
	Section string
}

// CategoryGroup lists the documents of one category.
type CategoryGroup struct {
	Category  legal.Category
	Documents []DocumentSummary
}

// Catalogue describes the served corpus.
type Catalogue struct {
	TotalDocuments int
	Groups         []CategoryGroup
	Methods        []method.Method
}

// Catalogue groups the corpus by category in first-seen order.
func (s *Service) Catalogue() Catalogue {
	index := make(map[legal.Category]int)
	var groups []CategoryGroup
	for i := range s.docs {
		d := &s.docs[i]
		gi, ok := index[d.Category()]
		if !ok {
			gi = len(groups)
			index[d.Category()] = gi
			groups = append(groups, CategoryGroup{Category: d.Category()})
		}
		groups[gi].Documents = append(groups[gi].Documents, DocumentSummary{
			ID: d.ID(), Title: d.Title(), Section: d.Section(),
		})
	}
	return Catalogue{
		TotalDocuments: len(s.docs),
		Groups:         groups,
		Methods:        method.All(),
	}
}
