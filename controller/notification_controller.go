// api/controller/notification_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
	helper_util "github.com/solistore/gateway/api/util/helper"
)

type NotificationController struct {
	notificationService service.INotificationService
}

func NewNotificationController(notificationService service.INotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// RegisterRoutes registers the API routes. Every operation is scoped to the
// caller's own notifications.
func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", nc.ListNotifications)
		notifications.GET("/:id", nc.GetNotification)
		notifications.PUT("/:id/read", nc.MarkRead)
	}
}

// ListNotifications endpoint
func (nc *NotificationController) ListNotifications(c *gin.Context) {
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

	notifications, err := nc.notificationService.ListNotifications(c.Request.Context(), principal.ID(), limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetNotification returns one notification. Scoping by owner happens in the
// store, so another user's id reads as absent.
func (nc *NotificationController) GetNotification(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID", err)
		return
	}

	notification, err := nc.notificationService.GetNotification(c.Request.Context(), id, principal.ID())
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkRead endpoint
func (nc *NotificationController) MarkRead(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID", err)
		return
	}

	notification, err := nc.notificationService.MarkRead(c.Request.Context(), id, principal.ID())
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}
