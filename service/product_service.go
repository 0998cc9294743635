// api/service/product_service.go
package service

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/solistore/gateway/api/dao"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

// ProductStore is the slice of the persistence layer the product service
// needs.
type ProductStore interface {
	ListProducts(ctx context.Context, filter dao.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type IProductService interface {
	ListProducts(ctx context.Context, filter dao.ProductFilter) ([]*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	store    ProductStore
	cache    *util.CacheService
	eventBus *util.EventBus
}

var _ IProductService = &ProductService{}

func NewProductService(store ProductStore, cache *util.CacheService, eventBus *util.EventBus) *ProductService {
	return &ProductService{store: store, cache: cache, eventBus: eventBus}
}

// ListProducts serves the catalog listing through the cache. The key encodes
// every filter, so two requests share an entry only when their filters match
// exactly.
func (s *ProductService) ListProducts(ctx context.Context, filter dao.ProductFilter) ([]*model.Product, error) {
	key := util.CacheKey("products", "list_products", map[string]any{
		"category_id": filter.CategoryID,
		"vendor_id":   filter.VendorID,
		"search":      filter.Search,
		"min_price":   filter.MinPrice,
		"max_price":   filter.MaxPrice,
		"sort_by":     filter.SortBy,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.productListTTL"),
		func(ctx context.Context) ([]*model.Product, error) {
			return s.store.ListProducts(ctx, filter)
		})
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	key := fmt.Sprintf("product:get_product:%d", id)
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.productTTL"),
		func(ctx context.Context) (*model.Product, error) {
			return s.store.GetProduct(ctx, id)
		})
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	created, err := s.store.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateProduct(ctx, created.ID, created.CategoryIDs())
	s.eventBus.Publish(ctx, "product.created", created)
	return created, nil
}

// UpdateProduct rewrites the product and invalidates every listing it could
// have appeared in: the categories it is moving out of as well as the ones it
// is moving into.
func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	existing, err := s.store.GetProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	touched := unionIDs(existing.CategoryIDs(), product.CategoryIDs())

	updated, err := s.store.UpdateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateProduct(ctx, updated.ID, touched)
	s.eventBus.Publish(ctx, "product.updated", updated)
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.invalidateProduct(ctx, id, existing.CategoryIDs())
	s.eventBus.Publish(ctx, "product.deleted", existing)
	return nil
}

// invalidateProduct clears the catalog namespaces a product write can stale:
// the shared listings, the product's own entry, and the per-category listings.
func (s *ProductService) invalidateProduct(ctx context.Context, id uint, categoryIDs []uint) {
	patterns := []string{
		"products:*",
		fmt.Sprintf("product:get_product:%d", id),
	}
	for _, cid := range categoryIDs {
		patterns = append(patterns, fmt.Sprintf("category:%d:products:*", cid))
	}
	s.cache.Invalidate(ctx, patterns...)
}

func unionIDs(a, b []uint) []uint {
	seen := make(map[uint]struct{}, len(a)+len(b))
	var out []uint
	for _, id := range append(a, b...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
