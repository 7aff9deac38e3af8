package repository

import (
	"context"
	"time"
)

// CacheRepository stores computed results as opaque strings. A miss and a
// backend failure both report ok=false.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
