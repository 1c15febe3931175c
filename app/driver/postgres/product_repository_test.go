package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/utils/logger"
)

func createTestProductRepository(t *testing.T) (*ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProductRepository(mockDB, testLogger).(*ProductRepository)

	return repo, mockDB
}

func productRows(products ...*domain.Product) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "slug", "name", "description", "price_cents", "stock",
		"category_id", "brand_id", "created_at", "updated_at",
	})
	for _, p := range products {
		rows.AddRow(
			p.ID, p.Slug, p.Name, p.Description, p.Price.Cents(), p.Stock,
			p.CategoryID, p.BrandID, p.CreatedAt, p.UpdatedAt,
		)
	}
	return rows
}

func testProduct(name, slug string, cents int64) *domain.Product {
	now := time.Now()
	return &domain.Product{
		ID:         uuid.New(),
		Slug:       slug,
		Name:       name,
		Price:      domain.NewMoneyFromCents(cents),
		Stock:      3,
		CategoryID: uuid.New(),
		BrandID:    uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestProductRepository_List(t *testing.T) {
	guitar := testProduct("Fender Stratocaster", "fender-stratocaster", 100000)
	amp := testProduct("Marshall DSL40", "marshall-dsl40", 64900)

	tests := []struct {
		name      string
		query     domain.CatalogQuery
		setupDB   func(pgxmock.PgxPoolIface)
		wantCount int
		wantTotal int
		wantErr   bool
		errorMsg  string
	}{
		{
			name:  "unfiltered first page",
			query: domain.CatalogQuery{Page: 1, PageSize: 20},
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT COUNT(.+) FROM products").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
				mockDB.ExpectQuery("SELECT(.+)FROM products(.+)ORDER BY p.created_at DESC(.+)LIMIT").
					WithArgs(20, 0).
					WillReturnRows(productRows(guitar, amp))
			},
			wantCount: 2,
			wantTotal: 2,
		},
		{
			name:  "category and price filters are forwarded",
			query: domain.CatalogQuery{Page: 2, PageSize: 10, Category: "guitars", MinPrice: domain.NewMoneyFromCents(50000)},
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT COUNT(.+)WHERE c.slug(.+)p.price_cents >=").
					WithArgs("guitars", int64(50000)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(11))
				mockDB.ExpectQuery("SELECT(.+)WHERE c.slug(.+)p.price_cents >=(.+)LIMIT").
					WithArgs("guitars", int64(50000), 10, 10).
					WillReturnRows(productRows(guitar))
			},
			wantCount: 1,
			wantTotal: 11,
		},
		{
			name:  "search filter matches name or description",
			query: domain.CatalogQuery{Page: 1, PageSize: 20, Search: "strat"},
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT COUNT(.+)p.name ILIKE(.+)p.description ILIKE").
					WithArgs("%strat%").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				mockDB.ExpectQuery("SELECT(.+)p.name ILIKE(.+)LIMIT").
					WithArgs("%strat%", 20, 0).
					WillReturnRows(productRows(guitar))
			},
			wantCount: 1,
			wantTotal: 1,
		},
		{
			name:  "database error during count",
			query: domain.CatalogQuery{Page: 1, PageSize: 20},
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT COUNT(.+) FROM products").
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr:  true,
			errorMsg: "failed to count products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProductRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			products, total, err := repo.List(context.Background(), tt.query)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
				assert.Len(t, products, tt.wantCount)
				assert.Equal(t, tt.wantTotal, total)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_GetBySlug(t *testing.T) {
	guitar := testProduct("Fender Stratocaster", "fender-stratocaster", 100000)

	tests := []struct {
		name     string
		slug     string
		setupDB  func(pgxmock.PgxPoolIface, string)
		wantErr  error
		errorMsg string
	}{
		{
			name: "existing product",
			slug: "fender-stratocaster",
			setupDB: func(mockDB pgxmock.PgxPoolIface, slug string) {
				mockDB.ExpectQuery("SELECT(.+)FROM products p(.+)WHERE p.slug").
					WithArgs(slug).
					WillReturnRows(productRows(guitar))
			},
		},
		{
			name: "unknown slug maps to the domain sentinel",
			slug: "no-such-product",
			setupDB: func(mockDB pgxmock.PgxPoolIface, slug string) {
				mockDB.ExpectQuery("SELECT(.+)FROM products p(.+)WHERE p.slug").
					WithArgs(slug).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "database error",
			slug: "fender-stratocaster",
			setupDB: func(mockDB pgxmock.PgxPoolIface, slug string) {
				mockDB.ExpectQuery("SELECT(.+)FROM products p(.+)WHERE p.slug").
					WithArgs(slug).
					WillReturnError(pgx.ErrTxClosed)
			},
			errorMsg: "failed to get product by slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProductRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.slug)

			product, err := repo.GetBySlug(context.Background(), tt.slug)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)
			case tt.errorMsg != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			default:
				assert.NoError(t, err)
				require.NotNil(t, product)
				assert.Equal(t, guitar.Slug, product.Slug)
				assert.Equal(t, int64(100000), product.Price.Cents())
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	guitar := testProduct("Fender Stratocaster", "fender-stratocaster", 100000)

	t.Run("existing product", func(t *testing.T) {
		repo, mockDB := createTestProductRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM products p(.+)WHERE p.id").
			WithArgs(guitar.ID).
			WillReturnRows(productRows(guitar))

		product, err := repo.GetByID(context.Background(), guitar.ID)

		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, guitar.ID, product.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		repo, mockDB := createTestProductRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mockDB.ExpectQuery("SELECT(.+)FROM products p(.+)WHERE p.id").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		product, err := repo.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Nil(t, product)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
