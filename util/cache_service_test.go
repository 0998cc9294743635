// api/util/cache_service_test.go
package util

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solistore/gateway/api/db"
	logger "github.com/solistore/gateway/api/logging"
)

func setupCacheTest(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	viper.Set("redis.defaultCacheTTL", "10m")
	return NewCacheService(), mr
}

func TestCacheKeyStableForEqualParams(t *testing.T) {
	a := CacheKey("products", "list_products", map[string]any{"limit": 10, "offset": 0})
	b := CacheKey("products", "list_products", map[string]any{"offset": 0, "limit": 10})
	assert.Equal(t, a, b)

	c := CacheKey("products", "list_products", map[string]any{"limit": 20, "offset": 0})
	assert.NotEqual(t, a, c)

	bare := CacheKey("products", "list_products", nil)
	assert.Equal(t, "products:list_products", bare)
}

func TestGetOrSetPopulatesOnMissAndSkipsFetchOnHit(t *testing.T) {
	cache, _ := setupCacheTest(t)
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := GetOrSet(ctx, cache, "products:list_products", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, calls)

	second, err := GetOrSet(ctx, cache, "products:list_products", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "hit must not invoke fetch")
}

func TestGetOrSetAppliesDefaultTTL(t *testing.T) {
	cache, mr := setupCacheTest(t)

	_, err := GetOrSet(context.Background(), cache, "vendors:list_vendors", 0,
		func(ctx context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, mr.TTL("vendors:list_vendors"))
}

func TestGetOrSetDiscardsUndecodableEntry(t *testing.T) {
	cache, mr := setupCacheTest(t)

	require.NoError(t, mr.Set("product:get_product:1", "{not json"))

	value, err := GetOrSet(context.Background(), cache, "product:get_product:1", time.Minute,
		func(ctx context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestGetOrSetDegradesOnStoreOutage(t *testing.T) {
	cache, mr := setupCacheTest(t)
	mr.Close()

	value, err := GetOrSet(context.Background(), cache, "products:list_products", time.Minute,
		func(ctx context.Context) (string, error) { return "direct", nil })
	require.NoError(t, err, "cache outage must not fail the request")
	assert.Equal(t, "direct", value)
}

func TestInvalidateClearsMatchingNamespacesOnly(t *testing.T) {
	cache, mr := setupCacheTest(t)
	ctx := context.Background()

	seed := []string{
		"products:list_products",
		`products:list_products:{"limit":10}`,
		"product:get_product:5",
		"category:3:products:list",
		"vendors:list_vendors",
	}
	for _, key := range seed {
		require.NoError(t, db.SetCache(ctx, key, "x", time.Minute))
	}

	cache.Invalidate(ctx,
		"products:*",
		fmt.Sprintf("product:get_product:%d", 5),
		"category:3:products:*")

	assert.False(t, mr.Exists("products:list_products"))
	assert.False(t, mr.Exists(`products:list_products:{"limit":10}`))
	assert.False(t, mr.Exists("product:get_product:5"))
	assert.False(t, mr.Exists("category:3:products:list"))

	// Unrelated namespaces survive.
	assert.True(t, mr.Exists("vendors:list_vendors"))
}

func TestInvalidateSwallowsOutage(t *testing.T) {
	cache, mr := setupCacheTest(t)
	mr.Close()

	assert.NotPanics(t, func() {
		cache.Invalidate(context.Background(), "products:*")
	})
}
