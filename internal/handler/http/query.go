package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/storegate/gateway/models"
)

// Query-parameter defaults applied when a parameter is absent.
const (
	defaultDescriptionLength = 100
	defaultLimit             = 0
	defaultSkip              = 0
)

func intQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q: %w", name, err)
	}
	return value, nil
}

func floatQueryParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q: %w", name, err)
	}
	return value, nil
}

func productQueryFromRequest(r *http.Request) (models.ProductQuery, error) {
	var query models.ProductQuery
	var err error

	if query.DescriptionLength, err = intQueryParam(r, "descriptionLength", defaultDescriptionLength); err != nil {
		return models.ProductQuery{}, err
	}
	if query.Limit, err = intQueryParam(r, "limit", defaultLimit); err != nil {
		return models.ProductQuery{}, err
	}
	if query.Skip, err = intQueryParam(r, "skip", defaultSkip); err != nil {
		return models.ProductQuery{}, err
	}
	return query, nil
}

func categoryQueryFromRequest(r *http.Request, category string) (models.CategoryQuery, error) {
	query := models.CategoryQuery{Category: category}
	var err error

	if query.MinPrice, err = floatQueryParam(r, "minPrice", 0); err != nil {
		return models.CategoryQuery{}, err
	}
	if query.MaxPrice, err = floatQueryParam(r, "maxPrice", 0); err != nil {
		return models.CategoryQuery{}, err
	}
	return query, nil
}

func userQueryFromRequest(r *http.Request) (models.UserQuery, error) {
	var query models.UserQuery
	var err error

	if query.Limit, err = intQueryParam(r, "limit", defaultLimit); err != nil {
		return models.UserQuery{}, err
	}
	if query.Skip, err = intQueryParam(r, "skip", defaultSkip); err != nil {
		return models.UserQuery{}, err
	}
	return query, nil
}
