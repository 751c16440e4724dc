// Package legal models the legal reference documents served by retrieval and
// the lexical scoring rules applied to them.
package legal

import (
	"fmt"
	"strings"
)

// Category is the legal area a document belongs to.
type Category string

// Known legal categories.
const (
	IncomeTax     Category = "Income Tax"
	GST           Category = "GST"
	CourtJudgment Category = "Court Judgment"
	PropertyLaw   Category = "Property Law"
)

// Document is a static legal reference document (immutable value object).
type Document struct {
	id       string
	title    string
	content  string
	category Category
	section  string
	keywords []string
	entities []string
}

// New validates and creates a Document. Keywords and entities are
// deduplicated preserving first occurrence; blanks are dropped.
func New(
	id, title, content string, category Category, section string,
	keywords, entities []string,
) (Document, error) {
	if strings.TrimSpace(id) == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return Document{}, fmt.Errorf("document %s: title is required", id)
	}
	if strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("document %s: content is required", id)
	}
	if strings.TrimSpace(string(category)) == "" {
		return Document{}, fmt.Errorf("document %s: category is required", id)
	}
	return Document{
		id:       id,
		title:    title,
		content:  content,
		category: category,
		section:  strings.TrimSpace(section),
		keywords: uniqueStrings(keywords),
		entities: uniqueStrings(entities),
	}, nil
}

// MustNew is New for static data; it panics on invalid input.
func MustNew(
	id, title, content string, category Category, section string,
	keywords, entities []string,
) Document {
	d, err := New(id, title, content, category, section, keywords, entities)
	if err != nil {
		panic(err)
	}
	return d
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the document body.
func (d *Document) Content() string { return d.content }

// Category returns the legal category.
func (d *Document) Category() Category { return d.category }

// Section returns the optional section label ("" when absent).
func (d *Document) Section() string { return d.section }

// Keywords returns the curated keyword set.
func (d *Document) Keywords() []string { return d.keywords }

// Entities returns the curated legal entity set.
func (d *Document) Entities() []string { return d.entities }

// Text is the string embedded for this document: title and body.
func (d *Document) Text() string { return d.title + " " + d.content }

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
