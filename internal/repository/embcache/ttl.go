package embcache

import (
	"context"
	"time"
)

type ttlKV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ExpiringStore makes every cache write expire after TTL.
type ExpiringStore struct {
	kv  ttlKV
	ttl time.Duration
}

// NewExpiringStore wraps kv. A non-positive ttl stores entries without expiry.
func NewExpiringStore(kv ttlKV, ttl time.Duration) *ExpiringStore {
	return &ExpiringStore{kv: kv, ttl: ttl}
}

// Get delegates to the wrapped store.
func (s *ExpiringStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.kv.Get(ctx, key) //nolint:wrapcheck // callers match db.ErrKeyNotFound
}

// Set writes value with the configured TTL.
func (s *ExpiringStore) Set(ctx context.Context, key string, value []byte) error {
	return s.kv.SetWithTTL(ctx, key, value, s.ttl) //nolint:wrapcheck // already a db.Error
}
