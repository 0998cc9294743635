// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterPublicRoutes registers the endpoints reachable without a token.
func (ac *AuthController) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/refresh", ac.Refresh)
		auth.POST("/register", ac.Register)
	}
}

// RegisterProtectedRoutes registers the endpoints that need a resolved
// principal.
func (ac *AuthController) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/logout", ac.Logout)
		auth.GET("/me", ac.Me)
	}
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login payload", gw_errors.ErrInvalidUserData)
		return
	}

	pair, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh endpoint
func (ac *AuthController) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid refresh payload", gw_errors.ErrInvalidUserData)
		return
	}

	pair, err := ac.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration payload", gw_errors.ErrInvalidUserData)
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Logout revokes the token this request authenticated with.
func (ac *AuthController) Logout(c *gin.Context) {
	token, ok := util.BearerTokenFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}

	if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "successfully logged out"})
}

// Me returns the authenticated principal's view of itself.
func (ac *AuthController) Me(c *gin.Context) {
	principal, ok := util.PrincipalFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", gw_errors.ErrInvalidToken)
		return
	}
	c.JSON(http.StatusOK, principal)
}
