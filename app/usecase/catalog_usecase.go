package usecase

import (
	"context"
	"fmt"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// CatalogUseCase implements catalog browsing business logic.
type CatalogUseCase struct {
	products   port.ProductRepository
	categories port.CategoryRepository
	brands     port.BrandRepository
}

// NewCatalogUseCase creates a new CatalogUseCase instance.
func NewCatalogUseCase(products port.ProductRepository, categories port.CategoryRepository, brands port.BrandRepository) *CatalogUseCase {
	return &CatalogUseCase{
		products:   products,
		categories: categories,
		brands:     brands,
	}
}

var _ port.CatalogUsecase = (*CatalogUseCase)(nil)

// ListProducts returns one page of products matching the query.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, query domain.CatalogQuery) ([]*domain.Product, domain.Pagination, error) {
	query = query.Normalize()

	if query.MinPrice < 0 || query.MaxPrice < 0 {
		return nil, domain.Pagination{}, fmt.Errorf("%w: price filters must not be negative", domain.ErrInvalidInput)
	}
	if query.MaxPrice > 0 && query.MinPrice > query.MaxPrice {
		return nil, domain.Pagination{}, fmt.Errorf("%w: minPrice exceeds maxPrice", domain.ErrInvalidInput)
	}

	products, total, err := uc.products.List(ctx, query)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list products: %w", err)
	}

	return products, domain.NewPagination(query, total), nil
}

// GetProductBySlug returns a single product.
func (uc *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if !domain.IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: invalid slug %q", domain.ErrInvalidInput, slug)
	}
	return uc.products.GetBySlug(ctx, slug)
}

// ListCategories returns all categories.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categories.List(ctx)
}

// ListBrands returns all brands.
func (uc *CatalogUseCase) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	return uc.brands.List(ctx)
}
