package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// OrderUseCase implements order placement. Submitted cart lines are only a
// claim: every line is re-priced from the catalog before the order is
// written, so a tampered client can never set its own prices.
type OrderUseCase struct {
	orders   port.OrderRepository
	products port.ProductRepository
}

// NewOrderUseCase creates a new OrderUseCase instance.
func NewOrderUseCase(orders port.OrderRepository, products port.ProductRepository) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		products: products,
	}
}

var _ port.OrderUsecase = (*OrderUseCase)(nil)

// PlaceOrder creates a pending order for the user from submitted cart
// lines.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, userID string, lines []domain.CartLine) (*domain.Order, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
		}

		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product id %q", domain.ErrInvalidInput, line.ProductID)
		}

		product, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}

		orderLines = append(orderLines, domain.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}

	order, err := domain.NewOrder(userID, orderLines)
	if err != nil {
		return nil, err
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return uc.orders.ListByUser(ctx, userID)
}
