// api/dao/category_dao.go
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

type CategoryDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewCategoryDAO(db *gorm.DB, auditService audit.Service) *CategoryDAO {
	return &CategoryDAO{db: db, auditService: auditService}
}

func (dao *CategoryDAO) ListCategories(ctx context.Context, limit, offset int) ([]*model.Category, error) {
	var categories []*model.Category
	if err := dao.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return categories, nil
}

func (dao *CategoryDAO) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := dao.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrCategoryNotFound
		}
		logger.Error("Failed to get category", zap.Error(err), zap.Uint("categoryID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &category, nil
}

func (dao *CategoryDAO) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := dao.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, gw_errors.ErrCategoryConflict
		}
		logger.Error("Failed to create category", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "category.created", "category", category.ID, nil)
	return category, nil
}

// ListCategoryProducts returns the products attached to one category.
func (dao *CategoryDAO) ListCategoryProducts(ctx context.Context, categoryID uint, limit, offset int) ([]*model.Product, error) {
	var products []*model.Product
	err := dao.db.WithContext(ctx).Model(&model.Product{}).
		Joins("JOIN product_categories pc ON pc.product_id = products.id").
		Where("pc.category_id = ?", categoryID).
		Limit(limit).Offset(offset).
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to list category products", zap.Error(err), zap.Uint("categoryID", categoryID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return products, nil
}
