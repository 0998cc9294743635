// api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/policy"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
)

// Authenticate resolves the bearer token into a principal and stores it in
// the request context. 401 covers every authentication failure; 503 is
// reserved for an unreachable identity collaborator so clients know to retry
// instead of re-authenticating.
func Authenticate(authService service.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			c.Abort()
			return
		}

		principal, err := authService.ResolvePrincipal(c.Request.Context(), token)
		if err != nil {
			status := util.StatusForError(err)
			if status != http.StatusServiceUnavailable {
				status = http.StatusUnauthorized
			}
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			c.JSON(status, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(util.ContextPrincipal, principal)
		c.Set(util.ContextBearerToken, token)
		c.Next()
	}
}

// RequireElevated gates a route group on administrative privilege. Must run
// after Authenticate.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := util.PrincipalFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			c.Abort()
			return
		}
		if err := policy.RequireElevated(principal); err != nil {
			c.JSON(util.StatusForError(err), gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireActive gates a route group on the account being active. Must run
// after Authenticate.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := util.PrincipalFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			c.Abort()
			return
		}
		if err := policy.RequireActive(principal); err != nil {
			c.JSON(util.StatusForError(err), gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}
