package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/driver/postgres"
	"github.com/Bast8313/soundora/app/utils/logger"
)

func TestDatabaseIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result, "Query result should be 1")
}

func TestCatalogRepositoryIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	t.Cleanup(func() {
		require.NoError(t, CleanupTestData(ctx))
	})

	// Seed one category, brand and product for the repository to find
	var categoryID, brandID uuid.UUID
	err = pool.QueryRow(ctx,
		"INSERT INTO categories (slug, name) VALUES ($1, $2) RETURNING id",
		"test-guitars", "Test Guitars").Scan(&categoryID)
	require.NoError(t, err, "Should insert test category")

	err = pool.QueryRow(ctx,
		"INSERT INTO brands (slug, name) VALUES ($1, $2) RETURNING id",
		"test-fender", "Test Fender").Scan(&brandID)
	require.NoError(t, err, "Should insert test brand")

	var productID uuid.UUID
	err = pool.QueryRow(ctx, `
		INSERT INTO products (slug, name, description, price_cents, stock, category_id, brand_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		"test-stratocaster", "Test Stratocaster", "Integration test guitar",
		int64(129900), 3, categoryID, brandID).Scan(&productID)
	require.NoError(t, err, "Should insert test product")

	productRepo := postgres.NewProductRepository(pool, testLogger)

	t.Run("GetBySlug returns the seeded product", func(t *testing.T) {
		product, err := productRepo.GetBySlug(ctx, "test-stratocaster")
		require.NoError(t, err, "Should find product by slug")

		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Test Stratocaster", product.Name)
		assert.Equal(t, domain.NewMoneyFromCents(129900), product.Price)
		assert.Equal(t, 3, product.Stock)
	})

	t.Run("GetBySlug for unknown slug", func(t *testing.T) {
		_, err := productRepo.GetBySlug(ctx, "test-no-such-product")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("List filters by category", func(t *testing.T) {
		products, total, err := productRepo.List(ctx, domain.CatalogQuery{
			Page:     1,
			PageSize: 20,
			Category: "test-guitars",
		})
		require.NoError(t, err, "Should list products")

		require.GreaterOrEqual(t, total, 1, "Should count at least the seeded product")
		found := false
		for _, p := range products {
			if p.ID == productID {
				found = true
			}
		}
		assert.True(t, found, "Seeded product should appear in the filtered listing")
	})
}

func TestOrderRepositoryIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	t.Cleanup(func() {
		require.NoError(t, CleanupTestData(ctx))
	})

	// Orders reference products; seed the minimum catalog first
	var categoryID, brandID, productID uuid.UUID
	err = pool.QueryRow(ctx,
		"INSERT INTO categories (slug, name) VALUES ($1, $2) RETURNING id",
		"test-studio", "Test Studio").Scan(&categoryID)
	require.NoError(t, err)
	err = pool.QueryRow(ctx,
		"INSERT INTO brands (slug, name) VALUES ($1, $2) RETURNING id",
		"test-shure", "Test Shure").Scan(&brandID)
	require.NoError(t, err)
	err = pool.QueryRow(ctx, `
		INSERT INTO products (slug, name, description, price_cents, stock, category_id, brand_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		"test-sm58", "Test SM58", "", int64(10900), 10, categoryID, brandID).Scan(&productID)
	require.NoError(t, err)

	orderRepo := postgres.NewOrderRepository(pool, testLogger)
	userID := "test-" + uuid.New().String()

	order, err := domain.NewOrder(userID, []domain.OrderLine{
		{ProductID: productID, Name: "Test SM58", UnitPrice: domain.NewMoneyFromCents(10900), Quantity: 2},
	})
	require.NoError(t, err, "Should build order domain object")

	t.Run("Create and GetByID round-trip", func(t *testing.T) {
		require.NoError(t, orderRepo.Create(ctx, order), "Should store order")

		stored, err := orderRepo.GetByID(ctx, order.ID)
		require.NoError(t, err, "Should retrieve stored order")

		assert.Equal(t, order.ID, stored.ID)
		assert.Equal(t, userID, stored.UserID)
		assert.Equal(t, domain.OrderStatusPending, stored.Status)
		assert.Equal(t, domain.NewMoneyFromCents(21800), stored.Total)
		require.Len(t, stored.Lines, 1)
		assert.Equal(t, productID, stored.Lines[0].ProductID)
		assert.Equal(t, 2, stored.Lines[0].Quantity)
	})

	t.Run("ListByUser returns only the owner's orders", func(t *testing.T) {
		orders, err := orderRepo.ListByUser(ctx, userID)
		require.NoError(t, err, "Should list orders")
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)

		other, err := orderRepo.ListByUser(ctx, "test-"+uuid.New().String())
		require.NoError(t, err, "Should list orders for unknown user")
		assert.Empty(t, other, "Unknown user should have no orders")
	})

	t.Run("GetByID for unknown order", func(t *testing.T) {
		_, err := orderRepo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestDatabaseSchemaIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	// Test that all required tables exist
	expectedTables := []string{
		"categories",
		"brands",
		"products",
		"orders",
		"order_lines",
	}

	for _, tableName := range expectedTables {
		t.Run("Table "+tableName+" exists", func(t *testing.T) {
			var exists bool
			err := pool.QueryRow(ctx,
				"SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = $1)",
				tableName).Scan(&exists)
			require.NoError(t, err, "Should query table existence")
			assert.True(t, exists, "Table %s should exist", tableName)
		})
	}

	// Test that required indexes exist
	expectedIndexes := []string{
		"idx_products_category_id",
		"idx_products_brand_id",
		"idx_orders_user_id",
		"idx_order_lines_order_id",
	}

	for _, indexName := range expectedIndexes {
		t.Run("Index "+indexName+" exists", func(t *testing.T) {
			var exists bool
			err := pool.QueryRow(ctx,
				"SELECT EXISTS(SELECT 1 FROM pg_indexes WHERE indexname = $1)",
				indexName).Scan(&exists)
			require.NoError(t, err, "Should query index existence")
			assert.True(t, exists, "Index %s should exist", indexName)
		})
	}
}

func TestTransactionIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	// Test transaction rollback
	t.Run("Transaction rollback", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err, "Should begin transaction")

		slug := "test-rollback-" + uuid.New().String()[:8]
		_, err = tx.Exec(ctx,
			"INSERT INTO categories (slug, name) VALUES ($1, $2)",
			slug, "Rollback Test Category")
		require.NoError(t, err, "Should insert category in transaction")

		err = tx.Rollback(ctx)
		require.NoError(t, err, "Should rollback transaction")

		var count int
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories WHERE slug = $1", slug).Scan(&count)
		require.NoError(t, err, "Should query category count")
		assert.Equal(t, 0, count, "Category should not exist after rollback")
	})

	// Test transaction commit
	t.Run("Transaction commit", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err, "Should begin transaction")

		slug := "test-commit-" + uuid.New().String()[:8]
		_, err = tx.Exec(ctx,
			"INSERT INTO categories (slug, name) VALUES ($1, $2)",
			slug, "Commit Test Category")
		require.NoError(t, err, "Should insert category in transaction")

		err = tx.Commit(ctx)
		require.NoError(t, err, "Should commit transaction")

		var count int
		err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories WHERE slug = $1", slug).Scan(&count)
		require.NoError(t, err, "Should query category count")
		assert.Equal(t, 1, count, "Category should exist after commit")

		// Cleanup
		_, err = pool.Exec(ctx, "DELETE FROM categories WHERE slug = $1", slug)
		require.NoError(t, err, "Should clean up test category")
	})
}
