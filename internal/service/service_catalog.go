package service

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/upstream"
	"github.com/storegate/gateway/models"
)

type catalogService struct {
	provider upstream.CatalogProvider
	observer Observer
	logger   *logger.Logger
}

// NewCatalogService returns the catalog service backed by the given
// upstream provider.
func NewCatalogService(provider upstream.CatalogProvider, observer Observer, log *logger.Logger) CatalogService {
	return &catalogService{
		provider: provider,
		observer: observer,
		logger:   componentLogger(log, "catalog"),
	}
}

func (s *catalogService) ListProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, upstream.Status, error) {
	start := time.Now()
	products, status, err := s.provider.Products(ctx)
	s.observer.ObserveCall("list_products", outcomeOf(status.Success(), err), time.Since(start))
	if err != nil {
		return nil, status, fmt.Errorf("list products: %w", err)
	}
	if !status.Success() {
		s.logger.Info().Int("status", int(status)).Msg("upstream rejected product listing")
		return products, status, nil
	}

	// Filter first, paginate second: skip and limit address positions in
	// the filtered sequence, not the upstream one.
	survivors := make([]models.Product, 0, len(products))
	for _, p := range products {
		if len(p.Description) <= query.DescriptionLength {
			survivors = append(survivors, p)
		}
	}
	if query.Skip >= len(survivors) {
		return []models.Product{}, status, nil
	}
	survivors = survivors[query.Skip:]
	if query.Limit > 0 && query.Limit < len(survivors) {
		survivors = survivors[:query.Limit]
	}
	return survivors, status, nil
}

func (s *catalogService) ProductByID(ctx context.Context, id int) (models.Product, upstream.Status, error) {
	start := time.Now()
	product, status, err := s.provider.ProductByID(ctx, id)
	s.observer.ObserveCall("product_by_id", outcomeOf(status.Success(), err), time.Since(start))
	if err != nil {
		return models.Product{}, status, fmt.Errorf("product by id: %w", err)
	}
	return product, status, nil
}

func (s *catalogService) ListByCategoryAndPrice(ctx context.Context, query models.CategoryQuery) ([]models.Product, upstream.Status, error) {
	start := time.Now()
	categories, status, err := s.provider.Categories(ctx)
	if err != nil {
		s.observer.ObserveCall("list_by_category", "fatal", time.Since(start))
		return nil, status, fmt.Errorf("category list: %w", err)
	}
	if !status.Success() || !slices.Contains(categories, query.Category) {
		// Unknown category: answer NotFound without a category-scoped
		// fetch.
		s.observer.ObserveCall("list_by_category", "upstream_error", time.Since(start))
		return nil, upstream.Status(http.StatusNotFound), nil
	}

	products, status, err := s.provider.ProductsByCategory(ctx, query.Category)
	s.observer.ObserveCall("list_by_category", outcomeOf(status.Success(), err), time.Since(start))
	if err != nil {
		return nil, status, fmt.Errorf("products by category: %w", err)
	}
	if !status.Success() {
		return products, status, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category != query.Category {
			continue
		}
		if p.Price < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && p.Price > query.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, status, nil
}

func (s *catalogService) SearchByName(ctx context.Context, productName string) ([]models.Product, upstream.Status, error) {
	start := time.Now()
	products, status, err := s.provider.SearchProducts(ctx, productName)
	s.observer.ObserveCall("search_products", outcomeOf(status.Success(), err), time.Since(start))
	if err != nil {
		return nil, status, fmt.Errorf("search products: %w", err)
	}
	return products, status, nil
}
