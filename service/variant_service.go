// api/service/variant_service.go
package service

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

type VariantStore interface {
	ListVariantsByProduct(ctx context.Context, productID uint, limit, offset int) ([]*model.ProductVariant, error)
	GetVariant(ctx context.Context, id uint) (*model.ProductVariant, error)
	CreateVariant(ctx context.Context, productID uint, variant *model.ProductVariant) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *model.ProductVariant) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id uint) error
}

type IVariantService interface {
	ListVariants(ctx context.Context, productID uint, limit, offset int) ([]*model.ProductVariant, error)
	GetVariant(ctx context.Context, id uint) (*model.ProductVariant, error)
	CreateVariant(ctx context.Context, productID uint, variant *model.ProductVariant) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *model.ProductVariant) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id uint) error
}

type VariantService struct {
	store VariantStore
	cache *util.CacheService
}

var _ IVariantService = &VariantService{}

func NewVariantService(store VariantStore, cache *util.CacheService) *VariantService {
	return &VariantService{store: store, cache: cache}
}

func (s *VariantService) ListVariants(ctx context.Context, productID uint, limit, offset int) ([]*model.ProductVariant, error) {
	key := util.CacheKey(fmt.Sprintf("product:%d:variants", productID), "list", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.variantTTL"),
		func(ctx context.Context) ([]*model.ProductVariant, error) {
			return s.store.ListVariantsByProduct(ctx, productID, limit, offset)
		})
}

func (s *VariantService) GetVariant(ctx context.Context, id uint) (*model.ProductVariant, error) {
	key := fmt.Sprintf("variant:get_variant:%d", id)
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.variantTTL"),
		func(ctx context.Context) (*model.ProductVariant, error) {
			return s.store.GetVariant(ctx, id)
		})
}

func (s *VariantService) CreateVariant(ctx context.Context, productID uint, variant *model.ProductVariant) (*model.ProductVariant, error) {
	created, err := s.store.CreateVariant(ctx, productID, variant)
	if err != nil {
		return nil, err
	}

	s.invalidateVariant(ctx, created.ID, productID)
	return created, nil
}

func (s *VariantService) UpdateVariant(ctx context.Context, variant *model.ProductVariant) (*model.ProductVariant, error) {
	existing, err := s.store.GetVariant(ctx, variant.ID)
	if err != nil {
		return nil, err
	}
	variant.ProductID = existing.ProductID

	updated, err := s.store.UpdateVariant(ctx, variant)
	if err != nil {
		return nil, err
	}

	s.invalidateVariant(ctx, updated.ID, updated.ProductID)
	return updated, nil
}

func (s *VariantService) DeleteVariant(ctx context.Context, id uint) error {
	existing, err := s.store.GetVariant(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteVariant(ctx, id); err != nil {
		return err
	}

	s.invalidateVariant(ctx, id, existing.ProductID)
	return nil
}

// invalidateVariant clears the variant's own entry, the product's variant
// listings, and the product caches, which embed pricing the variant write can
// stale.
func (s *VariantService) invalidateVariant(ctx context.Context, id, productID uint) {
	s.cache.Invalidate(ctx,
		fmt.Sprintf("variant:get_variant:%d", id),
		fmt.Sprintf("product:%d:variants:*", productID),
		fmt.Sprintf("product:get_product:%d", productID),
		"products:*")
}
