package port

//go:generate mockgen -source=client_port.go -destination=../mocks/mock_client_port.go

import (
	"context"

	"github.com/Bast8313/soundora/app/domain"
)

// StorefrontClient is the consuming side of the storefront REST API, used
// by the terminal client. Read operations are anonymous; order placement
// attaches the bearer token supplied by the caller.
type StorefrontClient interface {
	AuthClient

	ListProducts(ctx context.Context, query domain.CatalogQuery) ([]*domain.Product, domain.Pagination, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
	CreateOrder(ctx context.Context, token domain.AccessToken, lines []domain.CartLine) (*domain.Order, error)
}
