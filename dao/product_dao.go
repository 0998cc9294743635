// api/dao/product_dao.go
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

// ProductFilter carries the optional listing filters. Zero values mean "not
// filtered".
type ProductFilter struct {
	CategoryID uint
	VendorID   uint
	Search     string
	MinPrice   float64
	MaxPrice   float64
	SortBy     string // price_asc | price_desc | name_asc | name_desc
	Limit      int
	Offset     int
}

type ProductDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewProductDAO(db *gorm.DB, auditService audit.Service) *ProductDAO {
	return &ProductDAO{db: db, auditService: auditService}
}

func (dao *ProductDAO) ListProducts(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	query := dao.db.WithContext(ctx).Model(&model.Product{}).Preload("Categories")

	if filter.CategoryID != 0 {
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id = ?", filter.CategoryID)
	}
	if filter.VendorID != 0 {
		query = query.Where("vendor_id = ?", filter.VendorID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR tags ILIKE ?", like, like, like)
	}
	if filter.MinPrice > 0 {
		query = query.Where("list_price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("list_price <= ?", filter.MaxPrice)
	}

	switch filter.SortBy {
	case "price_asc":
		query = query.Order("list_price ASC")
	case "price_desc":
		query = query.Order("list_price DESC")
	case "name_asc":
		query = query.Order("name ASC")
	case "name_desc":
		query = query.Order("name DESC")
	}

	var products []*model.Product
	if err := query.Limit(filter.Limit).Offset(filter.Offset).Find(&products).Error; err != nil {
		logger.Error("Failed to list products", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return products, nil
}

func (dao *ProductDAO) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := dao.db.WithContext(ctx).Preload("Categories").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrProductNotFound
		}
		logger.Error("Failed to get product", zap.Error(err), zap.Uint("productID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &product, nil
}

func (dao *ProductDAO) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := dao.db.WithContext(ctx).Create(product).Error; err != nil {
		logger.Error("Failed to create product", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "product.created", "product", product.ID, product)
	return product, nil
}

// UpdateProduct persists the product and replaces its category set in one
// transaction.
func (dao *ProductDAO) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(product).Error; err != nil {
			return err
		}
		return tx.Model(product).Association("Categories").Replace(product.Categories)
	})
	if err != nil {
		logger.Error("Failed to update product", zap.Error(err), zap.Uint("productID", product.ID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "product.updated", "product", product.ID, product)
	return product, nil
}

func (dao *ProductDAO) DeleteProduct(ctx context.Context, id uint) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gw_errors.ErrProductNotFound
		}
		logger.Error("Failed to delete product", zap.Error(err), zap.Uint("productID", id))
		return gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "product.deleted", "product", id, nil)
	return nil
}
