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

// OrderRepository implements port.OrderRepository for PostgreSQL
type OrderRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewOrderRepository creates a new PostgreSQL order repository
func NewOrderRepository(db DatabaseIface, logger *slog.Logger) port.OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger.With("component", "order_repository"),
	}
}

// Create persists an order and its lines in one transaction
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, total_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		order.ID,
		order.UserID,
		order.Total.Cents(),
		string(order.Status),
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert order", "order_id", order.ID, "error", err)
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range order.Lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_lines (order_id, product_id, name, unit_price_cents, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			order.ID,
			line.ProductID,
			line.Name,
			line.UnitPrice.Cents(),
			line.Quantity,
		)
		if err != nil {
			r.logger.Error("failed to insert order line", "order_id", order.ID, "product_id", line.ProductID, "error", err)
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	r.logger.Info("order created", "order_id", order.ID, "user_id", order.UserID, "lines", len(order.Lines))
	return nil
}

// GetByID retrieves an order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	var totalCents int64
	var status string

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, total_cents, status, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.UserID, &totalCents, &status, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		r.logger.Error("failed to get order", "order_id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Total = domain.NewMoneyFromCents(totalCents)
	order.Status = domain.OrderStatus(status)

	lines, err := r.loadLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

// ListByUser returns the user's orders with their lines, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, total_cents, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		r.logger.Error("failed to list orders", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		var order domain.Order
		var totalCents int64
		var status string

		if err := rows.Scan(&order.ID, &order.UserID, &totalCents, &status, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		order.Total = domain.NewMoneyFromCents(totalCents)
		order.Status = domain.OrderStatus(status)
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	for _, order := range orders {
		lines, err := r.loadLines(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Lines = lines
	}

	return orders, nil
}

func (r *OrderRepository) loadLines(ctx context.Context, orderID uuid.UUID) ([]domain.OrderLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, name, unit_price_cents, quantity
		FROM order_lines
		WHERE order_id = $1
		ORDER BY name`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		var unitPriceCents int64

		if err := rows.Scan(&line.ProductID, &line.Name, &unitPriceCents, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order line row: %w", err)
		}
		line.UnitPrice = domain.NewMoneyFromCents(unitPriceCents)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order line rows: %w", err)
	}

	return lines, nil
}
