// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockledger/internal/domain/auth"
	"stockledger/internal/domain/catalog/product"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/report"
	"stockledger/internal/domain/settings"
	"stockledger/internal/infrastructure/http/v1/handlers"
	"stockledger/internal/infrastructure/http/v1/middleware"
	"stockledger/internal/infrastructure/storage/postgres"
	"stockledger/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection (for health checks).
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation.
	JWTValidator middleware.JWTValidator

	// Services for the API surface.
	AuthService     *auth.Service
	ProductService  *product.Service
	LedgerService   *ledger.Service
	SettingsService *settings.Service
	ReportService   *report.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		productHandler := handlers.NewProductHandler(base, cfg.ProductService)
		products := protected.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.DELETE("/:id", productHandler.Delete)
		}

		transactionHandler := handlers.NewTransactionHandler(base, cfg.LedgerService)
		transactions := protected.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		settingsHandler := handlers.NewSettingsHandler(base, cfg.SettingsService)
		settingsGroup := protected.Group("/settings")
		{
			settingsGroup.GET("", settingsHandler.Get)
			settingsGroup.PUT("", settingsHandler.Update)
			settingsGroup.POST("/edit", settingsHandler.BeginEdit)
			settingsGroup.GET("/edit", settingsHandler.EditState)
			settingsGroup.PUT("/edit", settingsHandler.StagePrice)
			settingsGroup.DELETE("/edit", settingsHandler.DiscardEdit)
			settingsGroup.POST("/edit/commit", settingsHandler.CommitEdit)
		}

		reportHandler := handlers.NewReportHandler(base, cfg.ReportService)
		reports := protected.Group("/reports")
		{
			reports.GET("/monthly", reportHandler.Monthly)
			reports.GET("/matrix", reportHandler.Matrices)
		}
	}

	return router
}
