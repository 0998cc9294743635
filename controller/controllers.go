// api/controller/controllers.go
package controller

import (
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
)

type Controllers struct {
	Auth         *AuthController
	User         *UserController
	Product      *ProductController
	Category     *CategoryController
	Vendor       *VendorController
	Attribute    *AttributeController
	Variant      *VariantController
	Basket       *BasketController
	Order        *OrderController
	Notification *NotificationController
}

func InitializeControllers(services *service.Services, validationUtil *util.ValidationUtil) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(services.Auth),
		User:         NewUserController(services.User),
		Product:      NewProductController(services.Product, validationUtil),
		Category:     NewCategoryController(services.Category, validationUtil),
		Vendor:       NewVendorController(services.Vendor, validationUtil),
		Attribute:    NewAttributeController(services.Attribute),
		Variant:      NewVariantController(services.Variant),
		Basket:       NewBasketController(services.Basket),
		Order:        NewOrderController(services.Order),
		Notification: NewNotificationController(services.Notification),
	}
}
