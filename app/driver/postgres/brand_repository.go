package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// BrandRepository implements port.BrandRepository for PostgreSQL
type BrandRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewBrandRepository creates a new PostgreSQL brand repository
func NewBrandRepository(db DatabaseIface, logger *slog.Logger) port.BrandRepository {
	return &BrandRepository{
		db:     db,
		logger: logger.With("component", "brand_repository"),
	}
}

// List returns all brands ordered by name
func (r *BrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	query := `
		SELECT id, slug, name
		FROM brands
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list brands", "error", err)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []*domain.Brand{}
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.Slug, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan brand row: %w", err)
		}
		brands = append(brands, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read brand rows: %w", err)
	}

	return brands, nil
}
