// api/service/category_service.go
package service

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

type CategoryStore interface {
	ListCategories(ctx context.Context, limit, offset int) ([]*model.Category, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	ListCategoryProducts(ctx context.Context, categoryID uint, limit, offset int) ([]*model.Product, error)
}

type ICategoryService interface {
	ListCategories(ctx context.Context, limit, offset int) ([]*model.Category, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	ListCategoryProducts(ctx context.Context, categoryID uint, limit, offset int) ([]*model.Product, error)
}

type CategoryService struct {
	store CategoryStore
	cache *util.CacheService
}

var _ ICategoryService = &CategoryService{}

func NewCategoryService(store CategoryStore, cache *util.CacheService) *CategoryService {
	return &CategoryService{store: store, cache: cache}
}

func (s *CategoryService) ListCategories(ctx context.Context, limit, offset int) ([]*model.Category, error) {
	key := util.CacheKey("categories", "list_categories", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, 0,
		func(ctx context.Context) ([]*model.Category, error) {
			return s.store.ListCategories(ctx, limit, offset)
		})
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	key := fmt.Sprintf("category:get_category:%d", id)
	return util.GetOrSet(ctx, s.cache, key, 0,
		func(ctx context.Context) (*model.Category, error) {
			return s.store.GetCategory(ctx, id)
		})
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	created, err := s.store.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, "categories:*")
	return created, nil
}

// ListCategoryProducts keys the cached listing under the category's own
// namespace, so a product write can clear one category without touching the
// others.
func (s *CategoryService) ListCategoryProducts(ctx context.Context, categoryID uint, limit, offset int) ([]*model.Product, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	key := util.CacheKey(fmt.Sprintf("category:%d:products", categoryID), "list", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.productListTTL"),
		func(ctx context.Context) ([]*model.Product, error) {
			return s.store.ListCategoryProducts(ctx, categoryID, limit, offset)
		})
}
