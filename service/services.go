// api/service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/solistore/gateway/api/audit"
	"github.com/solistore/gateway/api/dao"
	"github.com/solistore/gateway/api/odoo"
	"github.com/solistore/gateway/api/util"
)

type Services struct {
	Auth         IAuthService
	User         IUserService
	Product      IProductService
	Category     ICategoryService
	Vendor       IVendorService
	Attribute    IAttributeService
	Variant      IVariantService
	Basket       IBasketService
	Order        IOrderService
	Notification INotificationService
}

func InitializeServices(
	db *gorm.DB,
	identity odoo.IdentityClient,
	auditService audit.Service,
	cacheService *util.CacheService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(db, auditService)
	productDAO := dao.NewProductDAO(db, auditService)
	categoryDAO := dao.NewCategoryDAO(db, auditService)
	vendorDAO := dao.NewVendorDAO(db, auditService)
	attributeDAO := dao.NewAttributeDAO(db, auditService)
	variantDAO := dao.NewVariantDAO(db, auditService)
	basketDAO := dao.NewBasketDAO(db, auditService)
	orderDAO := dao.NewOrderDAO(db, auditService)
	notificationDAO := dao.NewNotificationDAO(db)

	tokenService := NewTokenService()
	productService := NewProductService(productDAO, cacheService, eventBus)
	notificationService := NewNotificationService(notificationDAO)

	services := &Services{
		Auth:         NewAuthService(tokenService, userDAO, identity, auditService),
		User:         NewUserService(userDAO, cacheService, eventBus, notificationService),
		Product:      productService,
		Category:     NewCategoryService(categoryDAO, cacheService),
		Vendor:       NewVendorService(vendorDAO, cacheService),
		Attribute:    NewAttributeService(attributeDAO, cacheService),
		Variant:      NewVariantService(variantDAO, cacheService),
		Basket:       NewBasketService(basketDAO, productService),
		Order:        NewOrderService(orderDAO, basketDAO, cacheService, eventBus, notificationService),
		Notification: notificationService,
	}

	return services, nil
}
