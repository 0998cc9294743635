// api/dao/attribute_dao.go
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

type AttributeDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewAttributeDAO(db *gorm.DB, auditService audit.Service) *AttributeDAO {
	return &AttributeDAO{db: db, auditService: auditService}
}

func (dao *AttributeDAO) ListAttributes(ctx context.Context, limit, offset int) ([]*model.Attribute, error) {
	var attributes []*model.Attribute
	if err := dao.db.WithContext(ctx).Order("sequence ASC").Limit(limit).Offset(offset).Find(&attributes).Error; err != nil {
		logger.Error("Failed to list attributes", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return attributes, nil
}

func (dao *AttributeDAO) GetAttribute(ctx context.Context, id uint) (*model.Attribute, error) {
	var attribute model.Attribute
	if err := dao.db.WithContext(ctx).Preload("Values").First(&attribute, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrAttributeNotFound
		}
		logger.Error("Failed to get attribute", zap.Error(err), zap.Uint("attributeID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &attribute, nil
}

func (dao *AttributeDAO) CreateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	if err := dao.db.WithContext(ctx).Create(attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, gw_errors.ErrAttributeConflict
		}
		logger.Error("Failed to create attribute", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "attribute.created", "attribute", attribute.ID, nil)
	return attribute, nil
}

func (dao *AttributeDAO) UpdateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	if err := dao.db.WithContext(ctx).Omit("Values").Save(attribute).Error; err != nil {
		logger.Error("Failed to update attribute", zap.Error(err), zap.Uint("attributeID", attribute.ID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "attribute.updated", "attribute", attribute.ID, nil)
	return attribute, nil
}

// DeleteAttribute removes the attribute and its value dictionary together.
func (dao *AttributeDAO) DeleteAttribute(ctx context.Context, id uint) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attribute model.Attribute
		if err := tx.First(&attribute, id).Error; err != nil {
			return err
		}
		if err := tx.Where("attribute_id = ?", id).Delete(&model.AttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&attribute).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gw_errors.ErrAttributeNotFound
		}
		logger.Error("Failed to delete attribute", zap.Error(err), zap.Uint("attributeID", id))
		return gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "attribute.deleted", "attribute", id, nil)
	return nil
}

func (dao *AttributeDAO) ListAttributeValues(ctx context.Context, attributeID uint, limit, offset int) ([]*model.AttributeValue, error) {
	var values []*model.AttributeValue
	err := dao.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("sequence ASC").
		Limit(limit).Offset(offset).
		Find(&values).Error
	if err != nil {
		logger.Error("Failed to list attribute values", zap.Error(err), zap.Uint("attributeID", attributeID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return values, nil
}

// CreateAttributeValue checks the parent attribute first so a value can never
// dangle.
func (dao *AttributeDAO) CreateAttributeValue(ctx context.Context, attributeID uint, value *model.AttributeValue) (*model.AttributeValue, error) {
	value.AttributeID = attributeID
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Attribute{}, attributeID).Error; err != nil {
			return err
		}
		return tx.Create(value).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrAttributeNotFound
		}
		logger.Error("Failed to create attribute value", zap.Error(err), zap.Uint("attributeID", attributeID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "attribute_value.created", "attribute_value", value.ID, nil)
	return value, nil
}

// DeleteAttributeValue is scoped to the parent attribute, so a value id under
// the wrong attribute reads as absent.
func (dao *AttributeDAO) DeleteAttributeValue(ctx context.Context, attributeID, valueID uint) error {
	result := dao.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Delete(&model.AttributeValue{}, valueID)
	if result.Error != nil {
		logger.Error("Failed to delete attribute value", zap.Error(result.Error), zap.Uint("valueID", valueID))
		return gw_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return gw_errors.ErrAttributeValueNotFound
	}

	recordAudit(ctx, dao.auditService, "attribute_value.deleted", "attribute_value", valueID, nil)
	return nil
}
