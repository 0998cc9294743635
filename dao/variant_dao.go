// api/dao/variant_dao.go
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

type VariantDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewVariantDAO(db *gorm.DB, auditService audit.Service) *VariantDAO {
	return &VariantDAO{db: db, auditService: auditService}
}

func (dao *VariantDAO) ListVariantsByProduct(ctx context.Context, productID uint, limit, offset int) ([]*model.ProductVariant, error) {
	var variants []*model.ProductVariant
	err := dao.db.WithContext(ctx).
		Preload("AttributeValues").
		Where("product_id = ?", productID).
		Limit(limit).Offset(offset).
		Find(&variants).Error
	if err != nil {
		logger.Error("Failed to list variants", zap.Error(err), zap.Uint("productID", productID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return variants, nil
}

func (dao *VariantDAO) GetVariant(ctx context.Context, id uint) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := dao.db.WithContext(ctx).Preload("AttributeValues").First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrVariantNotFound
		}
		logger.Error("Failed to get variant", zap.Error(err), zap.Uint("variantID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &variant, nil
}

// CreateVariant checks the parent product and persists the variant with its
// attribute values in one transaction.
func (dao *VariantDAO) CreateVariant(ctx context.Context, productID uint, variant *model.ProductVariant) (*model.ProductVariant, error) {
	variant.ProductID = productID
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Product{}, productID).Error; err != nil {
			return err
		}
		return tx.Create(variant).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrProductNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, gw_errors.ErrVariantConflict
		}
		logger.Error("Failed to create variant", zap.Error(err), zap.Uint("productID", productID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "variant.created", "variant", variant.ID, nil)
	return variant, nil
}

func (dao *VariantDAO) UpdateVariant(ctx context.Context, variant *model.ProductVariant) (*model.ProductVariant, error) {
	if err := dao.db.WithContext(ctx).Omit("AttributeValues").Save(variant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, gw_errors.ErrVariantConflict
		}
		logger.Error("Failed to update variant", zap.Error(err), zap.Uint("variantID", variant.ID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "variant.updated", "variant", variant.ID, nil)
	return variant, nil
}

// DeleteVariant detaches the variant's attribute values instead of deleting
// them: the values remain in the attribute's dictionary.
func (dao *VariantDAO) DeleteVariant(ctx context.Context, id uint) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var variant model.ProductVariant
		if err := tx.First(&variant, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AttributeValue{}).
			Where("variant_id = ?", id).
			Update("variant_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&variant).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gw_errors.ErrVariantNotFound
		}
		logger.Error("Failed to delete variant", zap.Error(err), zap.Uint("variantID", id))
		return gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "variant.deleted", "variant", id, nil)
	return nil
}
