// api/service/basket_service.go
package service

import (
	"context"
	"errors"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
)

// BasketStore is the persistence surface for the per-user basket. Baskets are
// never cached: they change on nearly every request that reads them.
type BasketStore interface {
	GetBasketByUser(ctx context.Context, userID uint) (*model.Basket, error)
	CreateBasket(ctx context.Context, userID uint) (*model.Basket, error)
	AddItem(ctx context.Context, basketID uint, productID uint, quantity int, priceUnit float64) error
	UpdateItemQuantity(ctx context.Context, basketID, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, basketID, itemID uint) error
	ClearBasket(ctx context.Context, basketID uint) error
}

type IBasketService interface {
	GetBasket(ctx context.Context, userID uint) (*model.Basket, error)
	AddItem(ctx context.Context, userID uint, req model.BasketItemCreate) (*model.Basket, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Basket, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (*model.Basket, error)
}

type BasketService struct {
	store    BasketStore
	products IProductService
}

var _ IBasketService = &BasketService{}

func NewBasketService(store BasketStore, products IProductService) *BasketService {
	return &BasketService{store: store, products: products}
}

// GetBasket returns the caller's basket, creating an empty one on first use.
func (s *BasketService) GetBasket(ctx context.Context, userID uint) (*model.Basket, error) {
	basket, err := s.store.GetBasketByUser(ctx, userID)
	if err == nil {
		return basket, nil
	}
	if !errors.Is(err, gw_errors.ErrBasketNotFound) {
		return nil, err
	}

	if _, err := s.store.CreateBasket(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.GetBasketByUser(ctx, userID)
}

// AddItem prices the line from the current catalog price and returns the
// refreshed basket.
func (s *BasketService) AddItem(ctx context.Context, userID uint, req model.BasketItemCreate) (*model.Basket, error) {
	product, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, gw_errors.ErrProductNotFound
	}

	basket, err := s.GetBasket(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.AddItem(ctx, basket.ID, product.ID, req.Quantity, product.ListPrice); err != nil {
		return nil, err
	}
	return s.store.GetBasketByUser(ctx, userID)
}

func (s *BasketService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Basket, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	basket, err := s.store.GetBasketByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateItemQuantity(ctx, basket.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.store.GetBasketByUser(ctx, userID)
}

func (s *BasketService) RemoveItem(ctx context.Context, userID, itemID uint) (*model.Basket, error) {
	basket, err := s.store.GetBasketByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.RemoveItem(ctx, basket.ID, itemID); err != nil {
		return nil, err
	}
	return s.store.GetBasketByUser(ctx, userID)
}
