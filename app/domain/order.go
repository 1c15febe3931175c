package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order. Payment capture
// itself happens with an external provider; the storefront only records
// the resulting state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is one priced product entry of a placed order. Unlike a cart
// line, the unit price is the server-side catalog price at order time.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice Money     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// Subtotal returns the exact line total.
func (l OrderLine) Subtotal() Money {
	return l.UnitPrice.MulQuantity(l.Quantity)
}

// Order is a placed order owned by a user.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    string      `json:"user_id"`
	Lines     []OrderLine `json:"lines"`
	Total     Money       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewOrder creates a pending order from priced lines, computing the total
// with exact cent arithmetic.
func NewOrder(userID string, lines []OrderLine) (*Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var total Money
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("order line quantity must be at least 1, got %d", l.Quantity)
		}
		total = total.Add(l.Subtotal())
	}

	return &Order{
		ID:        uuid.New(),
		UserID:    userID,
		Lines:     lines,
		Total:     total,
		Status:    OrderStatusPending,
		CreatedAt: time.Now(),
	}, nil
}

// MarkPaid transitions a pending order to paid.
func (o *Order) MarkPaid() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("cannot mark %s order as paid", o.Status)
	}
	o.Status = OrderStatusPaid
	return nil
}

// Cancel transitions a pending order to cancelled.
func (o *Order) Cancel() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("cannot cancel %s order", o.Status)
	}
	o.Status = OrderStatusCancelled
	return nil
}
