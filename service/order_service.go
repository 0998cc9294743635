// api/service/order_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

type OrderStore interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint, limit, offset int) ([]*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error)
}

type IOrderService interface {
	CreateFromBasket(ctx context.Context, userID uint) (*model.Order, error)
	ListOrders(ctx context.Context, userID uint, limit, offset int) ([]*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error)
}

type OrderService struct {
	store         OrderStore
	baskets       BasketStore
	cache         *util.CacheService
	eventBus      *util.EventBus
	notifications INotificationService
}

var _ IOrderService = &OrderService{}

func NewOrderService(store OrderStore, baskets BasketStore, cache *util.CacheService, eventBus *util.EventBus, notifications INotificationService) *OrderService {
	return &OrderService{
		store:         store,
		baskets:       baskets,
		cache:         cache,
		eventBus:      eventBus,
		notifications: notifications,
	}
}

// CreateFromBasket turns the caller's basket into a draft order, priced from
// the basket lines, then empties the basket.
func (s *OrderService) CreateFromBasket(ctx context.Context, userID uint) (*model.Order, error) {
	basket, err := s.baskets.GetBasketByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(basket.Items) == 0 {
		return nil, gw_errors.ErrEmptyBasket
	}

	order := &model.Order{
		UserID:    userID,
		Status:    model.OrderStatusDraft,
		OrderDate: time.Now(),
	}
	for _, item := range basket.Items {
		subtotal := float64(item.Quantity) * item.PriceUnit
		order.Lines = append(order.Lines, model.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			PriceUnit: item.PriceUnit,
			Subtotal:  subtotal,
		})
		order.TotalAmount += subtotal
	}

	created, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if err := s.baskets.ClearBasket(ctx, basket.ID); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, fmt.Sprintf("order:list:%d:*", userID))
	s.eventBus.Publish(ctx, "order.created", created)
	s.notifications.NotifyOrderChange(ctx, "created", *created)
	return created, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint, limit, offset int) ([]*model.Order, error) {
	key := fmt.Sprintf("order:list:%d:%d:%d", userID, offset, limit)
	return util.GetOrSet(ctx, s.cache, key, viper.GetDuration("cache.orderListTTL"),
		func(ctx context.Context) ([]*model.Order, error) {
			return s.store.ListOrdersByUser(ctx, userID, limit, offset)
		})
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// UpdateStatus moves an order through its lifecycle and clears the owner's
// cached listings, which carry the old status.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, gw_errors.ErrInvalidOrderStatus
	}

	updated, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, fmt.Sprintf("order:list:%d:*", updated.UserID))
	s.eventBus.Publish(ctx, "order.status_updated", updated)
	s.notifications.NotifyOrderChange(ctx, "status_updated", *updated)
	return updated, nil
}
