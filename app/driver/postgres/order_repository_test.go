package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/utils/logger"
)

func createTestOrderRepository(t *testing.T) (*OrderRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewOrderRepository(mockDB, testLogger).(*OrderRepository)

	return repo, mockDB
}

func createTestOrder(t *testing.T) *domain.Order {
	t.Helper()

	order, err := domain.NewOrder("user-1", []domain.OrderLine{
		{ProductID: uuid.New(), Name: "Fender Stratocaster", UnitPrice: domain.NewMoneyFromCents(100000), Quantity: 1},
		{ProductID: uuid.New(), Name: "Dunlop Tortex Pick", UnitPrice: domain.NewMoneyFromCents(100), Quantity: 2},
	})
	require.NoError(t, err)

	return order
}

func TestOrderRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface, *domain.Order)
		wantErr  bool
		errorMsg string
	}{
		{
			name: "order and lines are written in one transaction",
			setupDB: func(mockDB pgxmock.PgxPoolIface, order *domain.Order) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO orders").
					WithArgs(order.ID, order.UserID, order.Total.Cents(), "pending", order.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				for _, line := range order.Lines {
					mockDB.ExpectExec("INSERT INTO order_lines").
						WithArgs(order.ID, line.ProductID, line.Name, line.UnitPrice.Cents(), line.Quantity).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
				}
				mockDB.ExpectCommit()
			},
		},
		{
			name: "failed line insert rolls the order back",
			setupDB: func(mockDB pgxmock.PgxPoolIface, order *domain.Order) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO orders").
					WithArgs(order.ID, order.UserID, order.Total.Cents(), "pending", order.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mockDB.ExpectExec("INSERT INTO order_lines").
					WithArgs(order.ID, order.Lines[0].ProductID, order.Lines[0].Name, order.Lines[0].UnitPrice.Cents(), order.Lines[0].Quantity).
					WillReturnError(pgx.ErrTxClosed)
				mockDB.ExpectRollback()
			},
			wantErr:  true,
			errorMsg: "failed to insert order line",
		},
		{
			name: "database error during order insert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, order *domain.Order) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO orders").
					WithArgs(order.ID, order.UserID, order.Total.Cents(), "pending", order.CreatedAt).
					WillReturnError(pgx.ErrTxClosed)
				mockDB.ExpectRollback()
			},
			wantErr:  true,
			errorMsg: "failed to insert order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestOrderRepository(t)
			defer mockDB.Close()

			order := createTestOrder(t)
			tt.setupDB(mockDB, order)

			err := repo.Create(context.Background(), order)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_GetByID(t *testing.T) {
	t.Run("order with lines", func(t *testing.T) {
		repo, mockDB := createTestOrderRepository(t)
		defer mockDB.Close()

		order := createTestOrder(t)

		mockDB.ExpectQuery("SELECT(.+)FROM orders(.+)WHERE id").
			WithArgs(order.ID).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "user_id", "total_cents", "status", "created_at"}).
					AddRow(order.ID, order.UserID, order.Total.Cents(), "pending", order.CreatedAt),
			)
		lineRows := pgxmock.NewRows([]string{"product_id", "name", "unit_price_cents", "quantity"})
		for _, line := range order.Lines {
			lineRows.AddRow(line.ProductID, line.Name, line.UnitPrice.Cents(), line.Quantity)
		}
		mockDB.ExpectQuery("SELECT(.+)FROM order_lines(.+)WHERE order_id").
			WithArgs(order.ID).
			WillReturnRows(lineRows)

		got, err := repo.GetByID(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, order.Total, got.Total)
		assert.Equal(t, domain.OrderStatusPending, got.Status)
		assert.Len(t, got.Lines, 2)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unknown order maps to the domain sentinel", func(t *testing.T) {
		repo, mockDB := createTestOrderRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mockDB.ExpectQuery("SELECT(.+)FROM orders(.+)WHERE id").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByID(context.Background(), id)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListByUser(t *testing.T) {
	repo, mockDB := createTestOrderRepository(t)
	defer mockDB.Close()

	order := createTestOrder(t)

	mockDB.ExpectQuery("SELECT(.+)FROM orders(.+)WHERE user_id(.+)ORDER BY created_at DESC").
		WithArgs("user-1").
		WillReturnRows(
			pgxmock.NewRows([]string{"id", "user_id", "total_cents", "status", "created_at"}).
				AddRow(order.ID, order.UserID, order.Total.Cents(), "paid", order.CreatedAt),
		)
	lineRows := pgxmock.NewRows([]string{"product_id", "name", "unit_price_cents", "quantity"})
	for _, line := range order.Lines {
		lineRows.AddRow(line.ProductID, line.Name, line.UnitPrice.Cents(), line.Quantity)
	}
	mockDB.ExpectQuery("SELECT(.+)FROM order_lines(.+)WHERE order_id").
		WithArgs(order.ID).
		WillReturnRows(lineRows)

	orders, err := repo.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusPaid, orders[0].Status)
	assert.Len(t, orders[0].Lines, 2)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
