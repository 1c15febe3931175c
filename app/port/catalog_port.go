package port

//go:generate mockgen -source=catalog_port.go -destination=../mocks/mock_catalog_port.go

import (
	"context"

	"github.com/google/uuid"

	"github.com/Bast8313/soundora/app/domain"
)

// CatalogUsecase defines catalog browsing business logic.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, query domain.CatalogQuery) ([]*domain.Product, domain.Pagination, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
}

// OrderUsecase defines order placement business logic. Lines are re-priced
// from the catalog server-side; client-sent prices are never trusted.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID string, lines []domain.CartLine) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]*domain.Order, error)
}

// ProductRepository defines product data access.
type ProductRepository interface {
	List(ctx context.Context, query domain.CatalogQuery) ([]*domain.Product, int, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// CategoryRepository defines category data access.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
}

// BrandRepository defines brand data access.
type BrandRepository interface {
	List(ctx context.Context) ([]*domain.Brand, error)
}

// OrderRepository defines order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
