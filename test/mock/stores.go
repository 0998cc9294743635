// test/mock/stores.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/solistore/gateway/api/dao"
	"github.com/solistore/gateway/api/model"
)

// MockProductStore is a mock implementation of service.ProductStore
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) ListProducts(ctx context.Context, filter dao.ProductFilter) ([]*model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *MockProductStore) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) DeleteProduct(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBasketStore is a mock implementation of service.BasketStore
type MockBasketStore struct {
	mock.Mock
}

func (m *MockBasketStore) GetBasketByUser(ctx context.Context, userID uint) (*model.Basket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Basket), args.Error(1)
}

func (m *MockBasketStore) CreateBasket(ctx context.Context, userID uint) (*model.Basket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Basket), args.Error(1)
}

func (m *MockBasketStore) AddItem(ctx context.Context, basketID uint, productID uint, quantity int, priceUnit float64) error {
	args := m.Called(ctx, basketID, productID, quantity, priceUnit)
	return args.Error(0)
}

func (m *MockBasketStore) UpdateItemQuantity(ctx context.Context, basketID, itemID uint, quantity int) error {
	args := m.Called(ctx, basketID, itemID, quantity)
	return args.Error(0)
}

func (m *MockBasketStore) RemoveItem(ctx context.Context, basketID, itemID uint) error {
	args := m.Called(ctx, basketID, itemID)
	return args.Error(0)
}

func (m *MockBasketStore) ClearBasket(ctx context.Context, basketID uint) error {
	args := m.Called(ctx, basketID)
	return args.Error(0)
}

// MockOrderStore is a mock implementation of service.OrderStore
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderStore) ListOrdersByUser(ctx context.Context, userID uint, limit, offset int) ([]*model.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockAttributeStore is a mock implementation of service.AttributeStore
type MockAttributeStore struct {
	mock.Mock
}

func (m *MockAttributeStore) ListAttributes(ctx context.Context, limit, offset int) ([]*model.Attribute, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attribute), args.Error(1)
}

func (m *MockAttributeStore) GetAttribute(ctx context.Context, id uint) (*model.Attribute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeStore) CreateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	args := m.Called(ctx, attribute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeStore) UpdateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	args := m.Called(ctx, attribute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attribute), args.Error(1)
}

func (m *MockAttributeStore) DeleteAttribute(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttributeStore) ListAttributeValues(ctx context.Context, attributeID uint, limit, offset int) ([]*model.AttributeValue, error) {
	args := m.Called(ctx, attributeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AttributeValue), args.Error(1)
}

func (m *MockAttributeStore) CreateAttributeValue(ctx context.Context, attributeID uint, value *model.AttributeValue) (*model.AttributeValue, error) {
	args := m.Called(ctx, attributeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttributeValue), args.Error(1)
}

func (m *MockAttributeStore) DeleteAttributeValue(ctx context.Context, attributeID, valueID uint) error {
	args := m.Called(ctx, attributeID, valueID)
	return args.Error(0)
}

// MockVariantStore is a mock implementation of service.VariantStore
type MockVariantStore struct {
	mock.Mock
}

func (m *MockVariantStore) ListVariantsByProduct(ctx context.Context, productID uint, limit, offset int) ([]*model.ProductVariant, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductVariant), args.Error(1)
}

func (m *MockVariantStore) GetVariant(ctx context.Context, id uint) (*model.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductVariant), args.Error(1)
}

func (m *MockVariantStore) CreateVariant(ctx context.Context, productID uint, variant *model.ProductVariant) (*model.ProductVariant, error) {
	args := m.Called(ctx, productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductVariant), args.Error(1)
}

func (m *MockVariantStore) UpdateVariant(ctx context.Context, variant *model.ProductVariant) (*model.ProductVariant, error) {
	args := m.Called(ctx, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductVariant), args.Error(1)
}

func (m *MockVariantStore) DeleteVariant(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotificationStore is a mock implementation of service.NotificationStore
type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) CreateNotification(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	args := m.Called(ctx, notification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationStore) ListNotificationsByUser(ctx context.Context, userID uint, limit, offset int) ([]*model.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Notification), args.Error(1)
}

func (m *MockNotificationStore) GetNotificationForUser(ctx context.Context, id, userID uint) (*model.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkNotificationRead(ctx context.Context, id, userID uint) (*model.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationStore) ListAdminUserIDs(ctx context.Context) ([]uint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}
