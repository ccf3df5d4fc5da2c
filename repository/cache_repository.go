package repository

import (
	"context"
	"time"
)

// CacheRepository stores encoded responses keyed by request fingerprint.
// Entries are disposable: a miss only means the engine runs again.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
