// api/service/attribute_service_test.go
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

func setupAttributeTest(t *testing.T) (*AttributeService, *api_mock.MockAttributeStore, *miniredis.Miniredis) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	viper.Set("redis.defaultCacheTTL", "10m")
	viper.Set("cache.attributeTTL", "1h")

	store := new(api_mock.MockAttributeStore)
	return NewAttributeService(store, util.NewCacheService()), store, mr
}

func TestListAttributesCached(t *testing.T) {
	svc, store, _ := setupAttributeTest(t)
	ctx := context.Background()

	store.On("ListAttributes", testify_mock.Anything, 100, 0).
		Return([]*model.Attribute{{ID: 1, Name: "Color"}}, nil).Once()

	first, err := svc.ListAttributes(ctx, 100, 0)
	require.NoError(t, err)
	second, err := svc.ListAttributes(ctx, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	store.AssertNumberOfCalls(t, "ListAttributes", 1)
}

func TestCreateAttributeInvalidatesListings(t *testing.T) {
	svc, store, mr := setupAttributeTest(t)
	ctx := context.Background()

	require.NoError(t, db.SetCache(ctx, "attributes:list_attributes:stale", "x", time.Minute))

	store.On("CreateAttribute", testify_mock.Anything, testify_mock.Anything).
		Return(&model.Attribute{ID: 2, Name: "Size"}, nil)

	_, err := svc.CreateAttribute(ctx, &model.Attribute{Name: "Size"})
	require.NoError(t, err)
	assert.False(t, mr.Exists("attributes:list_attributes:stale"))
}

func TestCreateAttributeValueInvalidatesOwnAttributeOnly(t *testing.T) {
	svc, store, mr := setupAttributeTest(t)
	ctx := context.Background()

	require.NoError(t, db.SetCache(ctx, "attribute:3:values:list:stale", "x", time.Minute))
	require.NoError(t, db.SetCache(ctx, "attribute:get_attribute:3", "x", time.Minute))
	require.NoError(t, db.SetCache(ctx, "attribute:9:values:list:other", "x", time.Minute))

	store.On("CreateAttributeValue", testify_mock.Anything, uint(3), testify_mock.Anything).
		Return(&model.AttributeValue{ID: 11, AttributeID: 3, Name: "Red"}, nil)

	_, err := svc.CreateAttributeValue(ctx, 3, &model.AttributeValue{Name: "Red"})
	require.NoError(t, err)

	assert.False(t, mr.Exists("attribute:3:values:list:stale"))
	assert.False(t, mr.Exists("attribute:get_attribute:3"))
	assert.True(t, mr.Exists("attribute:9:values:list:other"), "other attributes' values must survive")
}

func TestGetAttributeCachedByID(t *testing.T) {
	svc, store, mr := setupAttributeTest(t)
	ctx := context.Background()

	store.On("GetAttribute", testify_mock.Anything, uint(3)).
		Return(&model.Attribute{ID: 3, Name: "Color"}, nil).Once()

	_, err := svc.GetAttribute(ctx, 3)
	require.NoError(t, err)
	assert.True(t, mr.Exists("attribute:get_attribute:3"))

	_, err = svc.GetAttribute(ctx, 3)
	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "GetAttribute", 1)
}
