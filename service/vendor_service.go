// api/service/vendor_service.go
package service

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

type VendorStore interface {
	ListVendors(ctx context.Context, limit, offset int) ([]*model.Vendor, error)
	GetVendor(ctx context.Context, id uint) (*model.Vendor, error)
	CreateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error)
	DeleteVendor(ctx context.Context, id uint) error
}

type IVendorService interface {
	ListVendors(ctx context.Context, limit, offset int) ([]*model.Vendor, error)
	GetVendor(ctx context.Context, id uint) (*model.Vendor, error)
	CreateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error)
	DeleteVendor(ctx context.Context, id uint) error
}

type VendorService struct {
	store VendorStore
	cache *util.CacheService
}

var _ IVendorService = &VendorService{}

func NewVendorService(store VendorStore, cache *util.CacheService) *VendorService {
	return &VendorService{store: store, cache: cache}
}

func (s *VendorService) ListVendors(ctx context.Context, limit, offset int) ([]*model.Vendor, error) {
	key := util.CacheKey("vendors", "list_vendors", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.vendorTTL"),
		func(ctx context.Context) ([]*model.Vendor, error) {
			return s.store.ListVendors(ctx, limit, offset)
		})
}

func (s *VendorService) GetVendor(ctx context.Context, id uint) (*model.Vendor, error) {
	key := fmt.Sprintf("vendor:get_vendor:%d", id)
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.vendorTTL"),
		func(ctx context.Context) (*model.Vendor, error) {
			return s.store.GetVendor(ctx, id)
		})
}

func (s *VendorService) CreateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	created, err := s.store.CreateVendor(ctx, vendor)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, "vendors:*")
	return created, nil
}

func (s *VendorService) UpdateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	updated, err := s.store.UpdateVendor(ctx, vendor)
	if err != nil {
		return nil, err
	}
	s.invalidateVendor(ctx, updated.ID)
	return updated, nil
}

func (s *VendorService) DeleteVendor(ctx context.Context, id uint) error {
	if err := s.store.DeleteVendor(ctx, id); err != nil {
		return err
	}
	s.invalidateVendor(ctx, id)
	return nil
}

func (s *VendorService) invalidateVendor(ctx context.Context, id uint) {
	s.cache.Invalidate(ctx,
		"vendors:*",
		fmt.Sprintf("vendor:get_vendor:%d", id))
}
