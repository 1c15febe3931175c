package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Bast8313/soundora/app/domain"
	mock_port "github.com/Bast8313/soundora/app/mocks"
)

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	guitarID := uuid.New()
	pickID := uuid.New()
	guitar := &domain.Product{ID: guitarID, Name: "Fender Stratocaster", Slug: "fender-stratocaster", Price: domain.NewMoneyFromCents(100000)}
	pick := &domain.Product{ID: pickID, Name: "Dunlop Tortex Pick", Slug: "dunlop-tortex-pick", Price: domain.NewMoneyFromCents(100)}

	t.Run("re-prices lines from the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_port.NewMockProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), guitarID).Return(guitar, nil)
		products.EXPECT().GetByID(gomock.Any(), pickID).Return(pick, nil)

		orders := mock_port.NewMockOrderRepository(ctrl)
		orders.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) error {
				assert.Equal(t, "user-1", order.UserID)
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				// 1×1000.00 + 3×1.00, regardless of client-sent prices.
				assert.Equal(t, int64(100300), order.Total.Cents())
				return nil
			})

		uc := NewOrderUseCase(orders, products)
		lines := []domain.CartLine{
			{ProductID: guitarID.String(), Name: "Fender Stratocaster", UnitPrice: domain.NewMoneyFromCents(1), Quantity: 1},
			{ProductID: pickID.String(), Name: "Dunlop Tortex Pick", UnitPrice: domain.NewMoneyFromCents(1), Quantity: 3},
		}

		order, err := uc.PlaceOrder(context.Background(), "user-1", lines)

		require.NoError(t, err)
		require.Len(t, order.Lines, 2)
		assert.Equal(t, domain.NewMoneyFromCents(100000), order.Lines[0].UnitPrice)
		assert.Equal(t, domain.NewMoneyFromCents(100), order.Lines[1].UnitPrice)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_port.NewMockOrderRepository(ctrl)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		uc := NewOrderUseCase(orders, mock_port.NewMockProductRepository(ctrl))
		_, err := uc.PlaceOrder(context.Background(), "user-1", nil)

		require.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := NewOrderUseCase(mock_port.NewMockOrderRepository(ctrl), mock_port.NewMockProductRepository(ctrl))
		_, err := uc.PlaceOrder(context.Background(), "", []domain.CartLine{
			{ProductID: guitarID.String(), Quantity: 1},
		})

		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("malformed product id is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_port.NewMockProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

		uc := NewOrderUseCase(mock_port.NewMockOrderRepository(ctrl), products)
		_, err := uc.PlaceOrder(context.Background(), "user-1", []domain.CartLine{
			{ProductID: "not-a-uuid", Quantity: 1},
		})

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown product aborts the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_port.NewMockProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), guitarID).Return(nil, domain.ErrProductNotFound)

		orders := mock_port.NewMockOrderRepository(ctrl)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		uc := NewOrderUseCase(orders, products)
		_, err := uc.PlaceOrder(context.Background(), "user-1", []domain.CartLine{
			{ProductID: guitarID.String(), Quantity: 1},
		})

		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		products := mock_port.NewMockProductRepository(ctrl)
		products.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

		uc := NewOrderUseCase(mock_port.NewMockOrderRepository(ctrl), products)
		_, err := uc.PlaceOrder(context.Background(), "user-1", []domain.CartLine{
			{ProductID: guitarID.String(), Quantity: 0},
		})

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []*domain.Order{{ID: uuid.New(), UserID: "user-1", Status: domain.OrderStatusPaid}}

	orders := mock_port.NewMockOrderRepository(ctrl)
	orders.EXPECT().ListByUser(gomock.Any(), "user-1").Return(want, nil)

	uc := NewOrderUseCase(orders, mock_port.NewMockProductRepository(ctrl))
	got, err := uc.ListOrders(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrderUseCase_ListOrders_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewOrderUseCase(mock_port.NewMockOrderRepository(ctrl), mock_port.NewMockProductRepository(ctrl))
	_, err := uc.ListOrders(context.Background(), "")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
