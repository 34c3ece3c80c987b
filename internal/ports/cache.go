package ports

import (
	"context"
	"time"
)

// Cache is a generic key-value capability for usecases. The engine writes
// best-effort bookkeeping (last processed event, counters) through it;
// adapters may be backed by SQLite or any other store.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
