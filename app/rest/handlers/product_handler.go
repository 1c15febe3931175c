package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// ProductHandler handles catalog browsing HTTP requests
type ProductHandler struct {
	catalogUsecase port.CatalogUsecase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogUsecase port.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalogUsecase: catalogUsecase,
		logger:         logger,
	}
}

// List returns one page of products matching the query parameters
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	query, err := parseCatalogQuery(c)
	if err != nil {
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	products, pagination, err := h.catalogUsecase.ListProducts(ctx, query)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		return FailFromError(c, err)
	}

	return OKPaginated(c, products, pagination)
}

// GetBySlug returns a single product
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	product, err := h.catalogUsecase.GetProductBySlug(ctx, slug)
	if err != nil {
		h.logger.Warn("failed to get product", "slug", slug, "error", err)
		return FailFromError(c, err)
	}

	return OK(c, http.StatusOK, product)
}

// parseCatalogQuery reads the list-products filter parameters. Prices are
// decimal strings ("150.00"), pagination plain integers.
func parseCatalogQuery(c echo.Context) (domain.CatalogQuery, error) {
	query := domain.CatalogQuery{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
		Search:   c.QueryParam("search"),
	}

	var err error
	if query.Page, err = intParam(c, "page"); err != nil {
		return domain.CatalogQuery{}, err
	}
	if query.PageSize, err = intParam(c, "limit"); err != nil {
		return domain.CatalogQuery{}, err
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		if query.MinPrice, err = domain.ParseMoney(raw); err != nil {
			return domain.CatalogQuery{}, err
		}
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		if query.MaxPrice, err = domain.ParseMoney(raw); err != nil {
			return domain.CatalogQuery{}, err
		}
	}

	return query, nil
}

func intParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}
