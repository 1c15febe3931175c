package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Bast8313/soundora/app/driver/postgres"
)

// seedCatalog upserts the fixture into the catalog tables inside one
// transaction, keyed by slug so reruns update rows instead of duplicating
// them.
func seedCatalog(ctx context.Context, db *postgres.DB, fixture *Fixture, logger *slog.Logger) error {
	tx, err := db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	categoryIDs := make(map[string]uuid.UUID, len(fixture.Categories))
	for _, c := range fixture.Categories {
		var id uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO categories (slug, name)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, c.Slug, c.Name).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to upsert category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	brandIDs := make(map[string]uuid.UUID, len(fixture.Brands))
	for _, b := range fixture.Brands {
		var id uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO brands (slug, name)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, b.Slug, b.Name).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to upsert brand %s: %w", b.Slug, err)
		}
		brandIDs[b.Slug] = id
	}

	for _, p := range fixture.Products {
		price, err := p.PriceMoney()
		if err != nil {
			return fmt.Errorf("product %s: %w", p.Slug, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO products (slug, name, description, price_cents, stock, category_id, brand_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (slug) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				price_cents = EXCLUDED.price_cents,
				stock = EXCLUDED.stock,
				category_id = EXCLUDED.category_id,
				brand_id = EXCLUDED.brand_id,
				updated_at = CURRENT_TIMESTAMP`,
			p.Slug, p.Name, p.Description, price.Cents(), p.Stock,
			categoryIDs[p.Category], brandIDs[p.Brand])
		if err != nil {
			return fmt.Errorf("failed to upsert product %s: %w", p.Slug, err)
		}

		logger.Debug("product seeded", "slug", p.Slug, "price_cents", price.Cents())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}
