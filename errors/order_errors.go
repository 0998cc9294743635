// api/errors/order_errors.go
package errors

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")

	ErrBasketNotFound     = errors.New("basket not found")
	ErrBasketItemNotFound = errors.New("basket item not found")
	ErrEmptyBasket        = errors.New("basket is empty")
)
