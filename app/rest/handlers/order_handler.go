package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderUsecase port.OrderUsecase
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase port.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		logger:       logger,
	}
}

// CreateOrderRequest is the POST /api/orders body. Only product IDs and
// quantities are honored; prices come from the catalog.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest is one submitted cart line
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// Create places an order for the authenticated user
func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := c.Get("user").(*domain.Identity)
	if !ok || identity == nil {
		return Fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind order request", "error", err)
		return Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := requestValidator.Validate(&req); err != nil {
		h.logger.Warn("invalid order request", "error", err)
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	lines := make([]domain.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUsecase.PlaceOrder(ctx, identity.ID, lines)
	if err != nil {
		h.logger.Warn("failed to place order", "user_id", identity.ID, "error", err)
		return FailFromError(c, err)
	}

	h.logger.Info("order placed", "order_id", order.ID, "user_id", identity.ID, "total", order.Total.String())

	return OK(c, http.StatusCreated, order)
}

// List returns the authenticated user's orders
func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	identity, ok := c.Get("user").(*domain.Identity)
	if !ok || identity == nil {
		return Fail(c, http.StatusUnauthorized, "authentication required")
	}

	orders, err := h.orderUsecase.ListOrders(ctx, identity.ID)
	if err != nil {
		h.logger.Error("failed to list orders", "user_id", identity.ID, "error", err)
		return FailFromError(c, err)
	}

	return OK(c, http.StatusOK, orders)
}
