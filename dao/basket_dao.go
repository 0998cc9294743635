// api/dao/basket_dao.go
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

type BasketDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewBasketDAO(db *gorm.DB, auditService audit.Service) *BasketDAO {
	return &BasketDAO{db: db, auditService: auditService}
}

// GetBasketByUser returns the user's basket with items and their products
// loaded. Every user has at most one basket.
func (dao *BasketDAO) GetBasketByUser(ctx context.Context, userID uint) (*model.Basket, error) {
	var basket model.Basket
	err := dao.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrBasketNotFound
		}
		logger.Error("Failed to get basket", zap.Error(err), zap.Uint("userID", userID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &basket, nil
}

func (dao *BasketDAO) CreateBasket(ctx context.Context, userID uint) (*model.Basket, error) {
	basket := model.Basket{UserID: userID}
	if err := dao.db.WithContext(ctx).Create(&basket).Error; err != nil {
		logger.Error("Failed to create basket", zap.Error(err), zap.Uint("userID", userID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &basket, nil
}

// AddItem inserts a basket line, or bumps the quantity when the product is
// already present, and refreshes the basket total in the same transaction.
func (dao *BasketDAO) AddItem(ctx context.Context, basketID uint, productID uint, quantity int, priceUnit float64) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.BasketItem
		err := tx.Where("basket_id = ? AND product_id = ?", basketID, productID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			item.PriceUnit = priceUnit
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = model.BasketItem{
				BasketID:  basketID,
				ProductID: productID,
				Quantity:  quantity,
				PriceUnit: priceUnit,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return recalculateTotal(tx, basketID)
	})
	if err != nil {
		logger.Error("Failed to add basket item", zap.Error(err), zap.Uint("basketID", basketID))
		return gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "basket.item_added", "basket", basketID, nil)
	return nil
}

func (dao *BasketDAO) UpdateItemQuantity(ctx context.Context, basketID, itemID uint, quantity int) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BasketItem{}).
			Where("id = ? AND basket_id = ?", itemID, basketID).
			Update("quantity", quantity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gw_errors.ErrBasketItemNotFound
		}
		return recalculateTotal(tx, basketID)
	})
	if err != nil {
		if errors.Is(err, gw_errors.ErrBasketItemNotFound) {
			return err
		}
		logger.Error("Failed to update basket item", zap.Error(err), zap.Uint("itemID", itemID))
		return gw_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *BasketDAO) RemoveItem(ctx context.Context, basketID, itemID uint) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND basket_id = ?", itemID, basketID).Delete(&model.BasketItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gw_errors.ErrBasketItemNotFound
		}
		return recalculateTotal(tx, basketID)
	})
	if err != nil {
		if errors.Is(err, gw_errors.ErrBasketItemNotFound) {
			return err
		}
		logger.Error("Failed to remove basket item", zap.Error(err), zap.Uint("itemID", itemID))
		return gw_errors.ErrDatabaseOperation
	}
	return nil
}

// ClearBasket drops all items and zeroes the total. Used after checkout.
func (dao *BasketDAO) ClearBasket(ctx context.Context, basketID uint) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("basket_id = ?", basketID).Delete(&model.BasketItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Basket{}).Where("id = ?", basketID).Update("total_price", 0).Error
	})
	if err != nil {
		logger.Error("Failed to clear basket", zap.Error(err), zap.Uint("basketID", basketID))
		return gw_errors.ErrDatabaseOperation
	}
	return nil
}

func recalculateTotal(tx *gorm.DB, basketID uint) error {
	return tx.Model(&model.Basket{}).
		Where("id = ?", basketID).
		Update("total_price", tx.Model(&model.BasketItem{}).
			Select("COALESCE(SUM(quantity * price_unit), 0)").
			Where("basket_id = ?", basketID)).Error
}
