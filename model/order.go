package model

import "time"

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDone      OrderStatus = "done"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name"`
	UserID      uint        `json:"user_id" gorm:"index"`
	Status      OrderStatus `json:"status"`
	OrderDate   time.Time   `json:"order_date"`
	TotalAmount float64     `json:"total_amount"`
	Lines       []OrderLine `json:"lines" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"index"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	PriceUnit float64 `json:"price_unit"`
	Subtotal  float64 `json:"subtotal"`
}

type OrderStatusUpdate struct {
	Status OrderStatus `json:"status" binding:"required"`
}
