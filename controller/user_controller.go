// api/controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes registers the API routes. Listing and deactivation are
// admin-only; reads and updates of a single record apply the self-or-admin
// rule per request, so they live outside the admin group.
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup, admin *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/:id", uc.GetUser)
		users.PUT("/:id", uc.UpdateUser)
	}
	adminUsers := admin.Group("/users")
	{
		adminUsers.GET("", uc.ListUsers)
		adminUsers.DELETE("/:id", uc.DeactivateUser)
	}
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	if err := policy.RequireSelfOrElevated(principal, id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	user, err := uc.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	if err := policy.RequireSelfOrElevated(principal, id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	var update model.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", gw_errors.ErrInvalidUserData)
		return
	}

	updated, err := uc.userService.UpdateUser(c.Request.Context(), id, update)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	users, err := uc.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeactivateUser endpoint
func (uc *UserController) DeactivateUser(c *gin.Context) {
	id, err := helper_util.GetUintParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	if err := uc.userService.DeactivateUser(c.Request.Context(), id); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
