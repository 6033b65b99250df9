package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/storegate/gateway/internal/config"
	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/models"
)

// HTTPProvider is the HTTP/REST implementation of [CatalogProvider] and
// [DirectoryProvider]. It holds one shared resty client, created once at
// process start and safe for concurrent use by multiple in-flight requests.
type HTTPProvider struct {
	client  *resty.Client
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPProvider constructs an [HTTPProvider] from the upstream
// configuration. It normalises and validates the base URL, configures the
// shared client with the resolved base URL and per-request timeout, and,
// when cfg.RateLimit is positive, installs an outbound rate limiter that
// every call waits on before dispatch.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPProvider(cfg config.Upstream, logger *logger.Logger) (*HTTPProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return &HTTPProvider{client: client, limiter: limiter, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a context-bound request, first waiting on the outbound
// rate limiter when one is configured. The wait aborts as soon as ctx is
// cancelled.
func (h *HTTPProvider) request(ctx context.Context) (*resty.Request, error) {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("upstream rate limit wait: %w", err)
		}
	}
	return h.client.R().SetContext(ctx), nil
}

// Products implements [CatalogProvider]. It GETs the full product
// collection from GET /products and unwraps the upstream envelope.
func (h *HTTPProvider) Products(ctx context.Context) ([]models.Product, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := req.Get("/products")
	if err != nil {
		return nil, 0, fmt.Errorf("products request: %w", err)
	}

	payload, status, err := Resolve[models.ProductsResponse](ctx, resp)
	if err != nil {
		return nil, status, fmt.Errorf("resolve products response: %w", err)
	}

	return payload.Products, status, nil
}

// ProductByID implements [CatalogProvider]. It GETs a single record from
// GET /products/{id}.
func (h *HTTPProvider) ProductByID(ctx context.Context, id int) (models.Product, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return models.Product{}, 0, err
	}

	resp, err := req.Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, 0, fmt.Errorf("product by id request: %w", err)
	}

	product, status, err := Resolve[models.Product](ctx, resp)
	if err != nil {
		return models.Product{}, status, fmt.Errorf("resolve product response: %w", err)
	}

	return product, status, nil
}

// ProductsByCategory implements [CatalogProvider]. It GETs the
// category-scoped collection from GET /products/category/{category}.
func (h *HTTPProvider) ProductsByCategory(ctx context.Context, category string) ([]models.Product, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := req.Get("/products/category/" + url.PathEscape(category))
	if err != nil {
		return nil, 0, fmt.Errorf("products by category request: %w", err)
	}

	payload, status, err := Resolve[models.ProductsResponse](ctx, resp)
	if err != nil {
		return nil, status, fmt.Errorf("resolve category products response: %w", err)
	}

	return payload.Products, status, nil
}

// Categories implements [CatalogProvider]. It GETs the category slug list
// from GET /products/category-list.
func (h *HTTPProvider) Categories(ctx context.Context) ([]string, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := req.Get("/products/category-list")
	if err != nil {
		return nil, 0, fmt.Errorf("category list request: %w", err)
	}

	categories, status, err := Resolve[[]string](ctx, resp)
	if err != nil {
		return nil, status, fmt.Errorf("resolve category list response: %w", err)
	}

	return categories, status, nil
}

// SearchProducts implements [CatalogProvider]. It GETs
// GET /products/search?q={term}. No local filtering is applied to the
// result.
func (h *HTTPProvider) SearchProducts(ctx context.Context, productName string) ([]models.Product, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := req.
		SetQueryParam("q", productName).
		Get("/products/search")
	if err != nil {
		return nil, 0, fmt.Errorf("product search request: %w", err)
	}

	payload, status, err := Resolve[models.ProductsResponse](ctx, resp)
	if err != nil {
		return nil, status, fmt.Errorf("resolve search response: %w", err)
	}

	return payload.Products, status, nil
}

// Users implements [DirectoryProvider]. It GETs the full user collection
// from GET /users and unwraps the upstream envelope.
func (h *HTTPProvider) Users(ctx context.Context) ([]models.User, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return nil, 0, err
	}

	resp, err := req.Get("/users")
	if err != nil {
		return nil, 0, fmt.Errorf("users request: %w", err)
	}

	payload, status, err := Resolve[models.UsersResponse](ctx, resp)
	if err != nil {
		return nil, status, fmt.Errorf("resolve users response: %w", err)
	}

	return payload.Users, status, nil
}

// UserByID implements [DirectoryProvider]. It GETs a single record from
// GET /users/{id}.
func (h *HTTPProvider) UserByID(ctx context.Context, id int) (models.User, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return models.User{}, 0, err
	}

	resp, err := req.Get(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, 0, fmt.Errorf("user by id request: %w", err)
	}

	user, status, err := Resolve[models.User](ctx, resp)
	if err != nil {
		return models.User{}, status, fmt.Errorf("resolve user response: %w", err)
	}

	return user, status, nil
}

// Login implements [DirectoryProvider]. It POSTs the credential pair to
// POST /auth/login with both field values lowercased; the upstream
// identity endpoint rejects mixed-case bodies.
func (h *HTTPProvider) Login(ctx context.Context, login models.LoginRequest) (models.User, Status, error) {
	req, err := h.request(ctx)
	if err != nil {
		return models.User{}, 0, err
	}

	body := models.LoginRequest{
		Email:    strings.ToLower(login.Email),
		Password: strings.ToLower(login.Password),
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/auth/login")
	if err != nil {
		return models.User{}, 0, fmt.Errorf("login request: %w", err)
	}

	user, status, err := Resolve[models.User](ctx, resp)
	if err != nil {
		return models.User{}, status, fmt.Errorf("resolve login response: %w", err)
	}

	return user, status, nil
}
