package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/solistore/gateway/api/audit"
	"github.com/solistore/gateway/api/config"
	"github.com/solistore/gateway/api/controller"
	"github.com/solistore/gateway/api/db"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/odoo"
	"github.com/solistore/gateway/api/router"
	"github.com/solistore/gateway/api/service"
	"github.com/solistore/gateway/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// The ERP client is only wired when this deployment federates identity.
	var identity odoo.IdentityClient
	if config.GetString("auth.mode") == "odoo" {
		identity, err = odoo.NewClient()
		if err != nil {
			logger.Fatal("Failed to initialize ERP client", zap.Error(err))
		}
	}

	services, err := service.InitializeServices(
		db.DB,
		identity,
		auditService,
		cacheService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Fan store events out to the admins' notification feeds.
	eventBus.Subscribe("order.created", func(ctx context.Context, event util.Event) error {
		return services.Notification.NotifyAdmins(ctx, fmt.Sprintf("new order placed: %v", event.Payload))
	})
	eventBus.Subscribe("user.deactivated", func(ctx context.Context, event util.Event) error {
		return services.Notification.NotifyAdmins(ctx, fmt.Sprintf("user deactivated: %v", event.Payload))
	})

	controllers := controller.InitializeControllers(services, validationUtil)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, services.Auth, 100, time.Minute) // 100 requests per minute

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
