package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/port"
)

// CatalogHandler handles category and brand listing HTTP requests
type CatalogHandler struct {
	catalogUsecase port.CatalogUsecase
	logger         *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase port.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		logger:         logger,
	}
}

// ListCategories returns all categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUsecase.ListCategories(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		return FailFromError(c, err)
	}

	return OK(c, http.StatusOK, categories)
}

// ListBrands returns all brands
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUsecase.ListBrands(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list brands", "error", err)
		return FailFromError(c, err)
	}

	return OK(c, http.StatusOK, brands)
}
