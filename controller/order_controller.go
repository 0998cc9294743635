// api/controller/order_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/policy"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
	helper_util "github.com/solistore/gateway/api/util/helper"
)

type OrderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// RegisterRoutes registers the API routes. A user sees their own orders;
// status transitions are an admin operation.
func (oc *OrderController) RegisterRoutes(r *gin.RouterGroup, admin *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", oc.CreateOrder)
		orders.GET("", oc.ListOrders)
		orders.GET("/:id", oc.GetOrder)
	}
	adminOrders := admin.Group("/orders")
	{
		adminOrders.PUT("/:id/status", oc.UpdateStatus)
	}
}

// CreateOrder converts the caller's basket into an order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}

	order, err := oc.orderService.CreateFromBasket(c.Request.Context(), principal.ID())
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders endpoint
func (oc *OrderController) ListOrders(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	orders, err := oc.orderService.ListOrders(c.Request.Context(), principal.ID(), limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order, owner or admin only.
func (oc *OrderController) GetOrder(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	order, err := oc.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	if err := policy.RequireSelfOrElevated(principal, order.UserID); err != nil {
		// Same response as a missing order, so callers cannot enumerate
		// other users' order ids.
		util.RespondWithMappedError(c, gw_errors.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus endpoint
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var req model.OrderStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status payload", gw_errors.ErrInvalidOrderStatus)
		return
	}

	order, err := oc.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
