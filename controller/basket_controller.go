// api/controller/basket_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
	helper_util "github.com/solistore/gateway/api/util/helper"
)

// BasketController exposes the caller's own basket only. The owner is always
// the authenticated principal; there is no way to address another user's
// basket.
type BasketController struct {
	basketService service.IBasketService
}

func NewBasketController(basketService service.IBasketService) *BasketController {
	return &BasketController{basketService: basketService}
}

// RegisterRoutes registers the API routes
func (bc *BasketController) RegisterRoutes(r *gin.RouterGroup) {
	basket := r.Group("/basket")
	{
		basket.GET("", bc.GetBasket)
		basket.POST("/items", bc.AddItem)
		basket.PUT("/items/:itemId", bc.UpdateItemQuantity)
		basket.DELETE("/items/:itemId", bc.RemoveItem)
	}
}

// GetBasket endpoint
func (bc *BasketController) GetBasket(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}

	basket, err := bc.basketService.GetBasket(c.Request.Context(), principal.ID())
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, basket)
}

// AddItem endpoint
func (bc *BasketController) AddItem(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}

	var req model.BasketItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid basket item", err)
		return
	}

	basket, err := bc.basketService.AddItem(c.Request.Context(), principal.ID(), req)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, basket)
}

// UpdateItemQuantity endpoint
func (bc *BasketController) UpdateItemQuantity(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	itemID, err := helper_util.GetUintParam(c, "itemId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid quantity", err)
		return
	}

	basket, err := bc.basketService.UpdateItemQuantity(c.Request.Context(), principal.ID(), itemID, req.Quantity)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, basket)
}

// RemoveItem endpoint
func (bc *BasketController) RemoveItem(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	itemID, err := helper_util.GetUintParam(c, "itemId")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	basket, err := bc.basketService.RemoveItem(c.Request.Context(), principal.ID(), itemID)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, basket)
}
