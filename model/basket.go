package model

import "time"

type Basket struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	UserID     uint         `json:"user_id" gorm:"uniqueIndex"`
	TotalPrice float64      `json:"total_price"`
	Items      []BasketItem `json:"items" gorm:"foreignKey:BasketID"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type BasketItem struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	BasketID  uint     `json:"basket_id" gorm:"index"`
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	PriceUnit float64  `json:"price_unit"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

type BasketItemCreate struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}
