package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// CategoryRepository implements port.CategoryRepository for PostgreSQL
type CategoryRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db DatabaseIface, logger *slog.Logger) port.CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger.With("component", "category_repository"),
	}
}

// List returns all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT id, slug, name
		FROM categories
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category rows: %w", err)
	}

	return categories, nil
}
