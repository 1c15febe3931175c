package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// Client is the consuming side of the storefront REST API. Every failure
// is translated into the domain error taxonomy before it leaves this
// package: transport problems become network errors, 401s authentication
// errors, unparseable bodies unknown errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a storefront API client
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "api_client"),
	}
}

var _ port.StorefrontClient = (*Client)(nil)

// envelope mirrors the server's uniform response wrapper
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`
	Error      string             `json:"error"`
}

// sessionPayload accepts both response shapes the API may produce: a flat
// access_token next to the user, or a nested session object.
type sessionPayload struct {
	User        *identityPayload `json:"user"`
	AccessToken string           `json:"access_token"`
	Session     *struct {
		AccessToken string           `json:"access_token"`
		User        *identityPayload `json:"user"`
	} `json:"session"`
}

type identityPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, nil)
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

// Register creates an account and returns the resulting session
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/register", "", reg, nil)
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

// ListProducts returns one page of the catalog
func (c *Client) ListProducts(ctx context.Context, query domain.CatalogQuery) ([]*domain.Product, domain.Pagination, error) {
	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("limit", strconv.Itoa(query.PageSize))
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Brand != "" {
		params.Set("brand", query.Brand)
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.MinPrice > 0 {
		params.Set("minPrice", query.MinPrice.String())
	}
	if query.MaxPrice > 0 {
		params.Set("maxPrice", query.MaxPrice.String())
	}

	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var pagination domain.Pagination
	data, err := c.do(ctx, http.MethodGet, path, "", nil, &pagination)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, domain.Pagination{}, malformedBody(err)
	}
	return products, pagination, nil
}

// GetProduct returns a single product by slug
func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(slug), "", nil, nil)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, malformedBody(err)
	}
	return &product, nil
}

// ListCategories returns all categories
func (c *Client) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/categories", "", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []*domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, malformedBody(err)
	}
	return categories, nil
}

// ListBrands returns all brands
func (c *Client) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/brands", "", nil, nil)
	if err != nil {
		return nil, err
	}

	var brands []*domain.Brand
	if err := json.Unmarshal(data, &brands); err != nil {
		return nil, malformedBody(err)
	}
	return brands, nil
}

// orderItemRequest is one submitted cart line; only ID and quantity are
// sent, the server re-prices from its catalog
type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

// CreateOrder places an order from the given cart lines
func (c *Client) CreateOrder(ctx context.Context, token domain.AccessToken, lines []domain.CartLine) (*domain.Order, error) {
	items := make([]orderItemRequest, 0, len(lines))
	for _, line := range lines {
		items = append(items, orderItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	data, err := c.do(ctx, http.MethodPost, "/api/orders", token, createOrderRequest{Items: items}, nil)
	if err != nil {
		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, malformedBody(err)
	}
	return &order, nil
}

// do performs one API round trip and unwraps the response envelope. The
// returned bytes are the raw data field.
func (c *Client) do(ctx context.Context, method, path string, token domain.AccessToken, body interface{}, pagination *domain.Pagination) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, domain.NewAuthError(domain.ErrorKindUnknown, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrorKindUnknown, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+string(token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		return nil, domain.NewAuthError(domain.ErrorKindNetwork, fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrorKindNetwork, "failed to read response body", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, malformedBody(err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, c.statusError(resp.StatusCode, env.Error)
	}

	if pagination != nil && env.Pagination != nil {
		*pagination = *env.Pagination
	}
	return env.Data, nil
}

// statusError maps an error response to the domain taxonomy
func (c *Client) statusError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return domain.NewAuthError(domain.ErrorKindAuthentication, message, domain.ErrUnauthorized)
	case status == http.StatusConflict:
		return domain.NewAuthError(domain.ErrorKindAuthentication, message, domain.ErrUserAlreadyExists)
	case status == http.StatusNotFound:
		return domain.NewAuthError(domain.ErrorKindUnknown, message, domain.ErrResourceNotFound)
	case status == http.StatusBadRequest:
		return domain.NewAuthError(domain.ErrorKindValidation, message, domain.ErrInvalidInput)
	case status >= 500:
		return domain.NewAuthError(domain.ErrorKindUnknown, message, domain.ErrInternal)
	default:
		return domain.NewAuthError(domain.ErrorKindUnknown, message, nil)
	}
}

// decodeSession accepts both the flat and the nested token shapes
func decodeSession(data json.RawMessage) (*domain.AuthSession, error) {
	var payload sessionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, malformedBody(err)
	}

	token := payload.AccessToken
	user := payload.User
	if payload.Session != nil {
		if token == "" {
			token = payload.Session.AccessToken
		}
		if user == nil {
			user = payload.Session.User
		}
	}

	if token == "" || user == nil || user.ID == "" {
		return nil, domain.NewAuthError(domain.ErrorKindUnknown, "auth response missing token or user", nil)
	}

	return &domain.AuthSession{
		Identity: domain.Identity{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		AccessToken: domain.AccessToken(token),
	}, nil
}

func malformedBody(err error) error {
	return domain.NewAuthError(domain.ErrorKindUnknown, "malformed response body", err)
}
