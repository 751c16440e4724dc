// Package document is the user-uploaded document aggregate persisted with its embedding.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/vecsense/internal/domain"
)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 163840 // 160KB

// Document is an uploaded text with the embedding of its content.
type Document struct {
	id        string
	title     string
	content   string
	embedding domain.Embedding
	createdAt time.Time
}

// New validates and creates a Document without an embedding.
func New(id, title, content string, createdAt time.Time) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("title and content are required: %w", domain.ErrInvalidInput)
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes): %w", MaxContentSize, domain.ErrInvalidInput)
	}
	return Document{id: id, title: title, content: content, createdAt: createdAt.UTC()}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, title, content string, emb domain.Embedding, createdAt time.Time) Document {
	return Document{id: id, title: title, content: content, embedding: emb, createdAt: createdAt}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the document text.
func (d *Document) Content() string { return d.content }

// Embedding returns the content embedding; empty until set.
func (d *Document) Embedding() domain.Embedding { return d.embedding }

// CreatedAt returns the creation time in UTC.
func (d *Document) CreatedAt() time.Time { return d.createdAt }

// SetEmbedding attaches the content embedding.
func (d *Document) SetEmbedding(emb domain.Embedding) { d.embedding = emb }
