// api/util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/solistore/gateway/api/db"
	logger "github.com/solistore/gateway/api/logging"
)

// CacheService implements the cache-aside protocol over the shared Redis
// store. Reads go through GetOrSet; writes invalidate with glob patterns.
// The cache is never allowed to turn a working request into a failing one:
// every store error degrades to direct execution.
type CacheService struct {
	defaultTTL time.Duration
}

func NewCacheService() *CacheService {
	return &CacheService{
		defaultTTL: viper.GetDuration("redis.defaultCacheTTL"),
	}
}

// DefaultTTL returns the fallback expiration for entries without an
// operation-specific TTL.
func (c *CacheService) DefaultTTL() time.Duration {
	return c.defaultTTL
}

// CacheKey derives a cache key from a namespace, an operation name and the
// operation's semantic arguments. Per-request context — db handles, resolved
// principals — must never appear in params: it is not part of the response
// identity and is generally not serializable. json.Marshal sorts map keys, so
// equal argument sets always produce the same key.
func CacheKey(namespace, operation string, params map[string]any) string {
	if len(params) == 0 {
		return fmt.Sprintf("%s:%s", namespace, operation)
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		// Unserializable params would poison the key; fall back to the bare
		// operation so the entry is at worst over-shared, never wrong for a
		// different operation.
		logger.Warn("Failed to encode cache key params", zap.Error(err),
			zap.String("namespace", namespace), zap.String("operation", operation))
		return fmt.Sprintf("%s:%s", namespace, operation)
	}
	return fmt.Sprintf("%s:%s:%s", namespace, operation, encoded)
}

// GetOrSet serves key from the cache when present, otherwise runs fetch,
// stores the serialized result under key with the given TTL and returns it.
// On a hit fetch is not invoked at all. Cache store failures fall through to
// fetch and are logged, never returned.
func GetOrSet[T any](ctx context.Context, c *CacheService, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	payload, found, err := db.GetCache(ctx, key)
	if err != nil {
		logger.Warn("Cache read failed, executing directly", zap.Error(err), zap.String("key", key))
	} else if found {
		var cached T
		if uerr := json.Unmarshal([]byte(payload), &cached); uerr == nil {
			logger.Debug("Cache hit", zap.String("key", key))
			return cached, nil
		}
		logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	result, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if encoded, merr := json.Marshal(result); merr == nil {
		if serr := db.SetCache(ctx, key, string(encoded), ttl); serr != nil {
			logger.Warn("Cache write failed", zap.Error(serr), zap.String("key", key))
		}
	}
	return result, nil
}

// Invalidate deletes every entry matching each pattern. Exact keys work too,
// since a key is a pattern without wildcards. Failures are logged and
// swallowed: a write that committed must not fail because the cache could not
// be cleaned, the stale window is bounded by the entry TTLs.
func (c *CacheService) Invalidate(ctx context.Context, patterns ...string) {
	for _, pattern := range patterns {
		if err := db.DeleteCachePattern(ctx, pattern); err != nil {
			logger.Warn("Cache invalidation failed",
				zap.Error(err),
				zap.String("pattern", pattern))
		}
	}
}
