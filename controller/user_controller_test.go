// api/controller/user_controller_test.go
package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/middleware"
	"github.com/solistore/gateway/api/model"
	api_mock "github.com/solistore/gateway/api/test/mock"
)

func setupUserRouter(t *testing.T) (*gin.Engine, *api_mock.MockAuthService, *api_mock.MockUserService) {
	t.Helper()
	logger.InitLogger(t.TempDir())
	gin.SetMode(gin.TestMode)

	authService := new(api_mock.MockAuthService)
	userService := new(api_mock.MockUserService)
	controller := NewUserController(userService)

	engine := gin.New()
	protected := engine.Group("/api/v1")
	protected.Use(middleware.Authenticate(authService))
	admin := engine.Group("/api/v1/admin")
	admin.Use(middleware.Authenticate(authService), middleware.RequireElevated())
	controller.RegisterRoutes(protected, admin)
	return engine, authService, userService
}

func grantToken(authService *api_mock.MockAuthService, token string, user *model.User) {
	authService.On("ResolvePrincipal", testify_mock.Anything, token).
		Return(model.LocalPrincipal{User: user}, nil)
}

func TestGetOwnUser(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	user := &model.User{ID: 42, Name: "Alice", Email: "alice@example.com", IsActive: true}
	grantToken(authService, "alice-token", user)
	userService.On("GetUser", testify_mock.Anything, uint(42)).Return(user, nil)

	res := perform(engine, http.MethodGet, "/api/v1/users/42", "", "alice-token")
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestGetOtherUserForbidden(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	grantToken(authService, "alice-token", &model.User{ID: 42, IsActive: true})

	res := perform(engine, http.MethodGet, "/api/v1/users/7", "", "alice-token")
	assert.Equal(t, http.StatusForbidden, res.Code)
	userService.AssertNotCalled(t, "GetUser")
}

func TestAdminReadsAnyUser(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	admin := &model.User{ID: 1, IsActive: true, IsSuperuser: true}
	grantToken(authService, "admin-token", admin)
	target := &model.User{ID: 7, Name: "Bob", IsActive: true}
	userService.On("GetUser", testify_mock.Anything, uint(7)).Return(target, nil)

	res := perform(engine, http.MethodGet, "/api/v1/users/7", "", "admin-token")
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	grantToken(authService, "alice-token", &model.User{ID: 42, IsActive: true})

	res := perform(engine, http.MethodGet, "/api/v1/admin/users", "", "alice-token")
	assert.Equal(t, http.StatusForbidden, res.Code)
	userService.AssertNotCalled(t, "ListUsers")
}

func TestListUsersAsAdmin(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	admin := &model.User{ID: 1, IsActive: true, IsSuperuser: true}
	grantToken(authService, "admin-token", admin)
	userService.On("ListUsers", testify_mock.Anything, 100, 0).
		Return([]*model.User{{ID: 1}, {ID: 2}}, nil)

	res := perform(engine, http.MethodGet, "/api/v1/admin/users", "", "admin-token")
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestInactivePrincipalCannotUpdateSelf(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	grantToken(authService, "stale-token", &model.User{ID: 42, IsActive: false})

	res := perform(engine, http.MethodPut, "/api/v1/users/42", `{"name":"New Name"}`, "stale-token")
	assert.Equal(t, http.StatusForbidden, res.Code)
	userService.AssertNotCalled(t, "UpdateUser")
}

func TestUpdateOwnUser(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	user := &model.User{ID: 42, Name: "Alice", IsActive: true}
	grantToken(authService, "alice-token", user)
	updated := &model.User{ID: 42, Name: "New Name", IsActive: true}
	userService.On("UpdateUser", testify_mock.Anything, uint(42), testify_mock.Anything).
		Return(updated, nil)

	res := perform(engine, http.MethodPut, "/api/v1/users/42", `{"name":"New Name"}`, "alice-token")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"name":"New Name"`)
}

func TestDeactivateUserRequiresAdmin(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	grantToken(authService, "alice-token", &model.User{ID: 42, IsActive: true})

	res := perform(engine, http.MethodDelete, "/api/v1/admin/users/42", "", "alice-token")
	assert.Equal(t, http.StatusForbidden, res.Code)
	userService.AssertNotCalled(t, "DeactivateUser")
}

func TestDeactivateUserAsAdmin(t *testing.T) {
	engine, authService, userService := setupUserRouter(t)
	admin := &model.User{ID: 1, IsActive: true, IsSuperuser: true}
	grantToken(authService, "admin-token", admin)
	userService.On("DeactivateUser", testify_mock.Anything, uint(7)).Return(nil)

	res := perform(engine, http.MethodDelete, "/api/v1/admin/users/7", "", "admin-token")
	assert.Equal(t, http.StatusNoContent, res.Code)
}
