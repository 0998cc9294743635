// api/service/variant_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/solistore/gateway/api/db"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
	api_mock "github.com/solistore/gateway/api/test/mock"
	"github.com/solistore/gateway/api/util"
)

func setupVariantTest(t *testing.T) (*VariantService, *api_mock.MockVariantStore, *miniredis.Miniredis) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	viper.Set("redis.defaultCacheTTL", "10m")
	viper.Set("cache.variantTTL", "30m")

	store := new(api_mock.MockVariantStore)
	return NewVariantService(store, util.NewCacheService()), store, mr
}

func TestListVariantsCachedPerProduct(t *testing.T) {
	svc, store, _ := setupVariantTest(t)
	ctx := context.Background()

	store.On("ListVariantsByProduct", testify_mock.Anything, uint(5), 100, 0).
		Return([]*model.ProductVariant{{ID: 2, ProductID: 5, SKU: "SHIRT-RED-M"}}, nil).Once()

	_, err := svc.ListVariants(ctx, 5, 100, 0)
	require.NoError(t, err)
	_, err = svc.ListVariants(ctx, 5, 100, 0)
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "ListVariantsByProduct", 1)
}

// A variant write stales the product caches too: listings and the product
// entry embed pricing derived from variants.
func TestCreateVariantInvalidatesProductCaches(t *testing.T) {
	svc, store, mr := setupVariantTest(t)
	ctx := context.Background()

	require.NoError(t, db.SetCache(ctx, "product:get_product:5", "x", time.Minute))
	require.NoError(t, db.SetCache(ctx, "products:list_products:stale", "x", time.Minute))
	require.NoError(t, db.SetCache(ctx, "product:5:variants:list:stale", "x", time.Minute))
	require.NoError(t, db.SetCache(ctx, "product:9:variants:list:other", "x", time.Minute))

	store.On("CreateVariant", testify_mock.Anything, uint(5), testify_mock.Anything).
		Return(&model.ProductVariant{ID: 2, ProductID: 5, SKU: "SHIRT-RED-M"}, nil)

	_, err := svc.CreateVariant(ctx, 5, &model.ProductVariant{SKU: "SHIRT-RED-M"})
	require.NoError(t, err)

	assert.False(t, mr.Exists("product:get_product:5"))
	assert.False(t, mr.Exists("products:list_products:stale"))
	assert.False(t, mr.Exists("product:5:variants:list:stale"))
	assert.True(t, mr.Exists("product:9:variants:list:other"), "other products' variants must survive")
}

func TestDeleteVariantInvalidatesOwnEntry(t *testing.T) {
	svc, store, mr := setupVariantTest(t)
	ctx := context.Background()

	require.NoError(t, db.SetCache(ctx, "variant:get_variant:2", "x", time.Minute))

	store.On("GetVariant", testify_mock.Anything, uint(2)).
		Return(&model.ProductVariant{ID: 2, ProductID: 5}, nil)
	store.On("DeleteVariant", testify_mock.Anything, uint(2)).Return(nil)

	require.NoError(t, svc.DeleteVariant(ctx, 2))
	assert.False(t, mr.Exists("variant:get_variant:2"))
}
