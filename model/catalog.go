package model

import "time"

type Category struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"index"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

type Product struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"index"`
	Description string     `json:"description"`
	ListPrice   float64    `json:"list_price"`
	VendorID    uint       `json:"vendor_id"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	ImageURL    string     `json:"image_url,omitempty"`
	Tags        string     `json:"tags,omitempty"`
	Barcode     string     `json:"barcode,omitempty"`
	Categories  []Category `json:"categories" gorm:"many2many:product_categories"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CategoryIDs returns the ids of every category the product belongs to.
func (p *Product) CategoryIDs() []uint {
	ids := make([]uint, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Attribute is a named axis of product variation, e.g. "Color" or "Size".
type Attribute struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Name        string           `json:"name" gorm:"index"`
	DisplayType string           `json:"display_type" gorm:"default:radio"`
	Sequence    int              `json:"sequence" gorm:"default:0"`
	Values      []AttributeValue `json:"values,omitempty" gorm:"foreignKey:AttributeID"`
}

// AttributeValue is one point on an attribute axis, e.g. "Red". A value bound
// to a variant carries its VariantID; unbound values form the attribute's
// dictionary.
type AttributeValue struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"index"`
	AttributeID uint   `json:"attribute_id" gorm:"index"`
	Sequence    int    `json:"sequence" gorm:"default:0"`
	VariantID   *uint  `json:"variant_id,omitempty" gorm:"index"`
}

// ProductVariant is a sellable combination of attribute values under a
// product, with its own SKU and price delta.
type ProductVariant struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	ProductID       uint             `json:"product_id" gorm:"index"`
	SKU             string           `json:"sku" gorm:"uniqueIndex"`
	Price           float64          `json:"price"`
	PriceExtra      float64          `json:"price_extra" gorm:"default:0"`
	Barcode         string           `json:"barcode,omitempty"`
	AttributeValues []AttributeValue `json:"attribute_values,omitempty" gorm:"foreignKey:VariantID"`
}
