// api/dao/vendor_dao.go
package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/solistore/gateway/api/audit"
	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

type VendorDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewVendorDAO(db *gorm.DB, auditService audit.Service) *VendorDAO {
	return &VendorDAO{db: db, auditService: auditService}
}

func (dao *VendorDAO) ListVendors(ctx context.Context, limit, offset int) ([]*model.Vendor, error) {
	var vendors []*model.Vendor
	if err := dao.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&vendors).Error; err != nil {
		logger.Error("Failed to list vendors", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return vendors, nil
}

func (dao *VendorDAO) GetVendor(ctx context.Context, id uint) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := dao.db.WithContext(ctx).First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrVendorNotFound
		}
		logger.Error("Failed to get vendor", zap.Error(err), zap.Uint("vendorID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &vendor, nil
}

func (dao *VendorDAO) CreateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	if err := dao.db.WithContext(ctx).Create(vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, gw_errors.ErrVendorConflict
		}
		logger.Error("Failed to create vendor", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "vendor.created", "vendor", vendor.ID, nil)
	return vendor, nil
}

func (dao *VendorDAO) UpdateVendor(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	if err := dao.db.WithContext(ctx).Save(vendor).Error; err != nil {
		logger.Error("Failed to update vendor", zap.Error(err), zap.Uint("vendorID", vendor.ID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "vendor.updated", "vendor", vendor.ID, nil)
	return vendor, nil
}

func (dao *VendorDAO) DeleteVendor(ctx context.Context, id uint) error {
	result := dao.db.WithContext(ctx).Delete(&model.Vendor{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete vendor", zap.Error(result.Error), zap.Uint("vendorID", id))
		return gw_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return gw_errors.ErrVendorNotFound
	}

	recordAudit(ctx, dao.auditService, "vendor.deleted", "vendor", id, nil)
	return nil
}
