package cache

import (
	"context"
	"time"

	"github.com/matzehuels/tripgraph/pkg/observability"
)

// instrumented reports every lookup and write of the wrapped cache to the
// registered observability cache hooks.
type instrumented struct {
	Cache
}

// Instrument wraps c so that hits, misses and writes reach
// observability.Cache(). The key type passed to the hooks is KeyType(key).
func Instrument(c Cache) Cache {
	return instrumented{Cache: c}
}

func (c instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, KeyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, KeyType(key))
		}
	}
	return data, hit, err
}

func (c instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}
