// api/controller/auth_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/middleware"
	"github.com/solistore/gateway/api/model"
	api_mock "github.com/solistore/gateway/api/test/mock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *api_mock.MockAuthService) {
	t.Helper()
	logger.InitLogger(t.TempDir())
	gin.SetMode(gin.TestMode)

	authService := new(api_mock.MockAuthService)
	controller := NewAuthController(authService)

	engine := gin.New()
	public := engine.Group("/api/v1")
	protected := engine.Group("/api/v1")
	protected.Use(middleware.Authenticate(authService))
	controller.RegisterPublicRoutes(public)
	controller.RegisterProtectedRoutes(protected)
	return engine, authService
}

func perform(engine *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginEndpoint(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("Login", testify_mock.Anything, "alice@example.com", "s3cret-pass").
		Return(&model.TokenPair{AccessToken: "aaa", RefreshToken: "rrr", TokenType: "bearer"}, nil)

	res := perform(engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"s3cret-pass"}`, "")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"access_token":"aaa"`)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("Login", testify_mock.Anything, "alice@example.com", "wrong").
		Return(nil, gw_errors.ErrInvalidCredentials)

	res := perform(engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	// The response must not leak which part of the credentials failed.
	assert.NotContains(t, res.Body.String(), "wrong")
}

func TestLoginEndpointMissingFields(t *testing.T) {
	engine, _ := setupAuthRouter(t)

	res := perform(engine, http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestLoginEndpointIdentityOutage(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("Login", testify_mock.Anything, "alice@example.com", "s3cret-pass").
		Return(nil, gw_errors.ErrIdentityUnavailable)

	res := perform(engine, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"s3cret-pass"}`, "")

	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
}

func TestRefreshEndpointRevokedToken(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("Refresh", testify_mock.Anything, "spent-token").
		Return(nil, gw_errors.ErrTokenRevoked)

	res := perform(engine, http.MethodPost, "/api/v1/auth/refresh",
		`{"refresh_token":"spent-token"}`, "")

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestRegisterEndpointConflict(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("Register", testify_mock.Anything, testify_mock.Anything).
		Return(nil, gw_errors.ErrUserConflict)

	res := perform(engine, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","name":"Alice","password":"longenoughpw"}`, "")

	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestMeEndpointRequiresToken(t *testing.T) {
	engine, _ := setupAuthRouter(t)

	res := perform(engine, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestMeEndpointReturnsPrincipal(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	user := &model.User{ID: 42, Name: "Alice", Email: "alice@example.com", IsActive: true}
	authService.On("ResolvePrincipal", testify_mock.Anything, "valid-token").
		Return(model.LocalPrincipal{User: user}, nil)

	res := perform(engine, http.MethodGet, "/api/v1/auth/me", "", "valid-token")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"email":"alice@example.com"`)
}

func TestLogoutEndpointRevokesSession(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	user := &model.User{ID: 42, IsActive: true}
	authService.On("ResolvePrincipal", testify_mock.Anything, "valid-token").
		Return(model.LocalPrincipal{User: user}, nil)
	authService.On("Logout", testify_mock.Anything, "valid-token").Return(nil)

	res := perform(engine, http.MethodPost, "/api/v1/auth/logout", "", "valid-token")

	assert.Equal(t, http.StatusOK, res.Code)
	authService.AssertCalled(t, "Logout", testify_mock.Anything, "valid-token")
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("ResolvePrincipal", testify_mock.Anything, "revoked-token").
		Return(nil, gw_errors.ErrTokenRevoked)

	res := perform(engine, http.MethodGet, "/api/v1/auth/me", "", "revoked-token")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestAuthenticatePreservesIdentityOutageStatus(t *testing.T) {
	engine, authService := setupAuthRouter(t)
	authService.On("ResolvePrincipal", testify_mock.Anything, "some-token").
		Return(nil, gw_errors.ErrIdentityUnavailable)

	res := perform(engine, http.MethodGet, "/api/v1/auth/me", "", "some-token")
	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
}
