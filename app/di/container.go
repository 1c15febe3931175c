package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/config"
	"github.com/Bast8313/soundora/app/driver/postgres"
	"github.com/Bast8313/soundora/app/driver/supabase"
	"github.com/Bast8313/soundora/app/gateway"
	"github.com/Bast8313/soundora/app/port"
	"github.com/Bast8313/soundora/app/rest"
	"github.com/Bast8313/soundora/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	SupabaseClient *supabase.Client

	// Gateways
	AuthGateway port.IdentityGateway

	// Usecases
	AuthUsecase    port.AuthUsecase
	CatalogUsecase port.CatalogUsecase
	OrderUsecase   port.OrderUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.SupabaseClient, err = supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	// Repositories
	productRepository := postgres.NewProductRepository(container.DB.Pool(), logger)
	categoryRepository := postgres.NewCategoryRepository(container.DB.Pool(), logger)
	brandRepository := postgres.NewBrandRepository(container.DB.Pool(), logger)
	orderRepository := postgres.NewOrderRepository(container.DB.Pool(), logger)

	// Gateways
	container.AuthGateway = gateway.NewAuthGateway(container.SupabaseClient, logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUseCase(container.AuthGateway)
	container.CatalogUsecase = usecase.NewCatalogUseCase(productRepository, categoryRepository, brandRepository)
	container.OrderUsecase = usecase.NewOrderUseCase(orderRepository, productRepository)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:           c.Logger,
		AuthUsecase:      c.AuthUsecase,
		CatalogUsecase:   c.CatalogUsecase,
		OrderUsecase:     c.OrderUsecase,
		HealthChecker:    c.DB,
		RateLimitEnabled: c.Config.RateLimitEnabled,
		EnableDebug:      c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
