// Package memory is an in-process db.KVStore backed by an expirable LRU.
// It is used as the embedding cache backend when no database is configured.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kailas-cloud/vecsense/internal/db"
)

var _ db.KVStore = (*KV)(nil)

// DefaultSize bounds the number of entries when none is configured.
const DefaultSize = 10_000

// KV is a bounded key-value store. Entries expire after the store-wide TTL.
type KV struct {
	lru *expirable.LRU[string, []byte]
}

// NewKV creates a store holding at most size entries; ttl <= 0 disables expiry.
func NewKV(size int, ttl time.Duration) *KV {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl < 0 {
		ttl = 0
	}
	return &KV{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

// Get returns a copy of the stored value.
func (s *KV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.lru.Get(key)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return clone(v), nil
}

// Set stores a copy of value.
func (s *KV) Set(_ context.Context, key string, value []byte) error {
	s.lru.Add(key, clone(value))
	return nil
}

// SetWithTTL stores value; the LRU has a single store-wide TTL, so ttl is ignored.
func (s *KV) SetWithTTL(ctx context.Context, key string, value []byte, _ time.Duration) error {
	return s.Set(ctx, key, value)
}

// Len reports the number of live entries.
func (s *KV) Len() int { return s.lru.Len() }

// Ping always succeeds.
func (s *KV) Ping(context.Context) error { return nil }

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
