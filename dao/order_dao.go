// api/dao/order_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/solistore/gateway/api/audit"
	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

type OrderDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewOrderDAO(db *gorm.DB, auditService audit.Service) *OrderDAO {
	return &OrderDAO{db: db, auditService: auditService}
}

// CreateOrder persists the order with its lines and assigns the order name
// from the generated ID, all in one transaction.
func (dao *OrderDAO) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		order.Name = fmt.Sprintf("ORD/%s/%03d", order.OrderDate.Format("2006"), order.ID)
		return tx.Model(order).Update("name", order.Name).Error
	})
	if err != nil {
		logger.Error("Failed to create order", zap.Error(err), zap.Uint("userID", order.UserID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "order.created", "order", order.ID, order)
	return order, nil
}

func (dao *OrderDAO) ListOrdersByUser(ctx context.Context, userID uint, limit, offset int) ([]*model.Order, error) {
	var orders []*model.Order
	err := dao.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		logger.Error("Failed to list orders", zap.Error(err), zap.Uint("userID", userID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return orders, nil
}

func (dao *OrderDAO) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := dao.db.WithContext(ctx).Preload("Lines").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrOrderNotFound
		}
		logger.Error("Failed to get order", zap.Error(err), zap.Uint("orderID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &order, nil
}

func (dao *OrderDAO) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	result := dao.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.Error("Failed to update order status", zap.Error(result.Error), zap.Uint("orderID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, gw_errors.ErrOrderNotFound
	}

	recordAudit(ctx, dao.auditService, "order.status_updated", "order", id, map[string]any{"status": status})
	return dao.GetOrder(ctx, id)
}
