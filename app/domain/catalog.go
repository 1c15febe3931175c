package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       Money     `json:"price"`
	Stock       int       `json:"stock"`
	CategoryID  uuid.UUID `json:"category_id"`
	BrandID     uuid.UUID `json:"brand_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct creates a product with validation.
func NewProduct(name, slug string, price Money, categoryID, brandID uuid.UUID) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("invalid product slug: %s", slug)
	}
	if price < 0 {
		return nil, fmt.Errorf("product price must not be negative")
	}

	now := time.Now()

	return &Product{
		ID:         uuid.New(),
		Slug:       slug,
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		BrandID:    brandID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// InStock reports whether the product can currently be ordered.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Category groups products for browsing.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

// CatalogQuery carries the list-products filter and pagination parameters.
// Zero values mean "no filter"; Page is 1-based.
type CatalogQuery struct {
	Page     int
	PageSize int
	Category string
	Brand    string
	Search   string
	MinPrice Money
	MaxPrice Money
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps pagination to sane bounds.
func (q CatalogQuery) Normalize() CatalogQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// Offset returns the row offset for the normalized query.
func (q CatalogQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes page counts for a total row count.
func NewPagination(query CatalogQuery, totalItems int) Pagination {
	totalPages := totalItems / query.PageSize
	if totalItems%query.PageSize != 0 {
		totalPages++
	}
	return Pagination{
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// IsValidSlug reports whether s is a lowercase URL slug (letters, digits
// and hyphens, starting and ending with a letter or digit).
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
