package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// ProductRepository implements port.ProductRepository for PostgreSQL
type ProductRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db DatabaseIface, logger *slog.Logger) port.ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger.With("component", "product_repository"),
	}
}

const productColumns = `p.id, p.slug, p.name, p.description, p.price_cents, p.stock, p.category_id, p.brand_id, p.created_at, p.updated_at`

// List returns one page of products matching the query plus the total
// match count. The query is expected to be normalized by the caller.
func (r *ProductRepository) List(ctx context.Context, query domain.CatalogQuery) ([]*domain.Product, int, error) {
	where, args := buildProductFilter(query)

	countQuery := `
		SELECT COUNT(*)
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id` + where

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id%s
		ORDER BY p.created_at DESC, p.id
		LIMIT $%d OFFSET $%d`, productColumns, where, len(args)+1, len(args)+2)

	args = append(args, query.PageSize, query.Offset())

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Error("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, query.PageSize)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, total, nil
}

// GetBySlug retrieves a single product by its URL slug
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		WHERE p.slug = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		r.logger.Error("failed to get product by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}

	return product, nil
}

// GetByID retrieves a single product by its ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		WHERE p.id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		r.logger.Error("failed to get product by id", "product_id", id, "error", err)
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

// buildProductFilter translates the catalog query into a WHERE clause.
// Filters are cumulative; zero values add no condition.
func buildProductFilter(query domain.CatalogQuery) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	addCondition := func(format string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if query.Category != "" {
		addCondition("c.slug = $%d", query.Category)
	}
	if query.Brand != "" {
		addCondition("b.slug = $%d", query.Brand)
	}
	if query.Search != "" {
		args = append(args, "%"+query.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}
	if query.MinPrice > 0 {
		addCondition("p.price_cents >= $%d", query.MinPrice.Cents())
	}
	if query.MaxPrice > 0 {
		addCondition("p.price_cents <= $%d", query.MaxPrice.Cents())
	}

	if len(conditions) == 0 {
		return "", args
	}

	where := "\n\t\tWHERE " + conditions[0]
	for _, c := range conditions[1:] {
		where += " AND " + c
	}
	return where, args
}

// scanProduct reads one product row from either pgx.Row or pgx.Rows.
func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var priceCents int64

	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Description,
		&priceCents,
		&p.Stock,
		&p.CategoryID,
		&p.BrandID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Price = domain.NewMoneyFromCents(priceCents)
	return &p, nil
}
