// api/router/router.go

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/solistore/gateway/api/controller"
	"github.com/solistore/gateway/api/middleware"
	"github.com/solistore/gateway/api/service"
)

// SetupRouter wires the route tree. Three tiers: public (no token), protected
// (resolved principal), admin (protected plus elevated privilege).
func SetupRouter(
	controllers *controller.Controllers,
	authService service.IAuthService,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("cors.allowOrigins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	public := router.Group("/api/v1")
	protected := router.Group("/api/v1")
	protected.Use(middleware.Authenticate(authService))
	// Shopping endpoints additionally refuse deactivated accounts up front.
	active := router.Group("/api/v1")
	active.Use(middleware.Authenticate(authService), middleware.RequireActive())
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.Authenticate(authService), middleware.RequireElevated())

	controllers.Auth.RegisterPublicRoutes(public)
	controllers.Auth.RegisterProtectedRoutes(protected)
	controllers.User.RegisterRoutes(protected, admin)
	controllers.Product.RegisterRoutes(public, admin)
	controllers.Category.RegisterRoutes(public, admin)
	controllers.Vendor.RegisterRoutes(protected, admin)
	controllers.Attribute.RegisterRoutes(public, admin)
	controllers.Variant.RegisterRoutes(public, admin)
	controllers.Basket.RegisterRoutes(active)
	controllers.Order.RegisterRoutes(active, admin)
	controllers.Notification.RegisterRoutes(protected)

	return router
}
