package cacherepo

import (
	"context"
	"time"
)

// Cache is the subset of a key-value store the cache repositories need.
// A missing key is not an error: Get yields "" and Del yields 0.
type Cache interface {
	Get(ctx context.Context, key string) CacheResponse[string]
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) CacheResponse[string]
	Del(ctx context.Context, keys ...string) CacheResponse[int64]
}

type CacheResponse[T any] interface {
	Err() error
	Result() (T, error)
}
