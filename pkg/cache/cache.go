// Package cache stores computed layout documents and rendered artifacts.
//
// Three backends implement [Cache]:
//   - [FileCache] keeps entries as JSON files under a directory (CLI default)
//   - [RedisCache] shares entries across processes through Redis
//   - [NullCache] stores nothing
//
// Keys come from a [Keyer], which hashes the inputs that determine a result
// so two runs over the same scenario share an entry.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/masonry/pkg/observability"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Default time-to-live values per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Observed wraps c so that every Get and Set reports to the cache hooks
// registered with the observability package.
func Observed(c Cache) Cache {
	if c == nil {
		c = NewNullCache()
	}
	return &observedCache{Cache: c}
}

type observedCache struct {
	Cache
}

func (c *observedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}
	return data, hit, err
}

func (c *observedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
	return nil
}
