// api/util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

// Context keys set by the authentication middleware.
const (
	ContextPrincipal   = "principal"
	ContextBearerToken = "bearerToken"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// PrincipalFromContext returns the principal the authentication middleware
// resolved for this request.
func PrincipalFromContext(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}

// BearerTokenFromContext returns the raw bearer token for this request.
func BearerTokenFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextBearerToken)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}

// StatusForError maps the error taxonomy onto HTTP statuses: 401 for
// authentication failures, 403 for authorization failures, 404 for absent
// entities, 409 for duplicate keys, 503 for unreachable collaborators.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, gw_errors.ErrInvalidCredentials),
		errors.Is(err, gw_errors.ErrInvalidToken),
		errors.Is(err, gw_errors.ErrTokenRevoked),
		errors.Is(err, gw_errors.ErrPrincipalNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, gw_errors.ErrForbidden),
		errors.Is(err, gw_errors.ErrInactiveAccount):
		return http.StatusForbidden
	case errors.Is(err, gw_errors.ErrUserNotFound),
		errors.Is(err, gw_errors.ErrProductNotFound),
		errors.Is(err, gw_errors.ErrCategoryNotFound),
		errors.Is(err, gw_errors.ErrVendorNotFound),
		errors.Is(err, gw_errors.ErrOrderNotFound),
		errors.Is(err, gw_errors.ErrBasketNotFound),
		errors.Is(err, gw_errors.ErrBasketItemNotFound),
		errors.Is(err, gw_errors.ErrAttributeNotFound),
		errors.Is(err, gw_errors.ErrAttributeValueNotFound),
		errors.Is(err, gw_errors.ErrVariantNotFound),
		errors.Is(err, gw_errors.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, gw_errors.ErrUserConflict),
		errors.Is(err, gw_errors.ErrProductConflict),
		errors.Is(err, gw_errors.ErrCategoryConflict),
		errors.Is(err, gw_errors.ErrVendorConflict),
		errors.Is(err, gw_errors.ErrAttributeConflict),
		errors.Is(err, gw_errors.ErrVariantConflict):
		return http.StatusConflict
	case errors.Is(err, gw_errors.ErrInvalidUserData),
		errors.Is(err, gw_errors.ErrInvalidProductData),
		errors.Is(err, gw_errors.ErrInvalidCategoryData),
		errors.Is(err, gw_errors.ErrInvalidVendorData),
		errors.Is(err, gw_errors.ErrInvalidAttributeData),
		errors.Is(err, gw_errors.ErrInvalidVariantData),
		errors.Is(err, gw_errors.ErrInvalidOrderStatus),
		errors.Is(err, gw_errors.ErrEmptyBasket):
		return http.StatusBadRequest
	case errors.Is(err, gw_errors.ErrIdentityUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithMappedError resolves the status from the error taxonomy and uses
// the error's own message, which never contains secrets.
func RespondWithMappedError(c *gin.Context, err error) {
	status := StatusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	RespondWithError(c, status, message, err)
}
