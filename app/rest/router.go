package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Bast8313/soundora/app/port"
	"github.com/Bast8313/soundora/app/rest/handlers"
	custommw "github.com/Bast8313/soundora/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	AuthUsecase      port.AuthUsecase
	CatalogUsecase   port.CatalogUsecase
	OrderUsecase     port.OrderUsecase
	HealthChecker    handlers.DependencyChecker
	RateLimitEnabled bool
	EnableDebug      bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	productHandler := handlers.NewProductHandler(config.CatalogUsecase, config.Logger)
	catalogHandler := handlers.NewCatalogHandler(config.CatalogUsecase, config.Logger)
	orderHandler := handlers.NewOrderHandler(config.OrderUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())

	if config.RateLimitEnabled {
		rateLimiter := custommw.NewRateLimiter()
		e.Use(rateLimiter.RateLimit())
	}

	// Health endpoints (no auth required)
	health := e.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	health.GET("/ready", healthHandler.ReadinessCheck)
	health.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.GET("/me", authHandler.Me, authMiddleware.RequireAuth())

	// Catalog endpoints (public)
	api := e.Group("/api")
	api.GET("/products", productHandler.List)
	api.GET("/products/:slug", productHandler.GetBySlug)
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/brands", catalogHandler.ListBrands)

	// Order endpoints (require authentication)
	orders := api.Group("/orders")
	orders.Use(authMiddleware.RequireAuth())
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)

	return e
}
