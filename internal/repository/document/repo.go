// Package document persists uploaded documents as Redis hashes.
package document

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kailas-cloud/vecsense/internal/db"
	"github.com/kailas-cloud/vecsense/internal/domain"
	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
)

var keyPrefix = domain.KeyPrefix + "document:"

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save stores a document under its id, replacing any previous version.
func (r *Repo) Save(ctx context.Context, doc *domdoc.Document) error {
	key := docKey(doc.ID())
	if err := r.store.HSet(ctx, key, buildHashFields(doc)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	key := docKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL on a missing key returns an empty hash.
	if len(m) == 0 {
		return domdoc.Document{}, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return parseHashFields(m), nil
}

// List returns every stored document, newest first.
func (r *Repo) List(ctx context.Context) ([]domdoc.Document, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(hashes))
	for _, m := range hashes {
		// Deleted between SCAN and HGETALL.
		if len(m) == 0 {
			continue
		}
		docs = append(docs, parseHashFields(m))
	}

	slices.SortStableFunc(docs, func(a, b domdoc.Document) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return docs, nil
}

func docKey(id string) string {
	return keyPrefix + id
}
