package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/storegate/gateway/models"
)

// newValidator builds the request validator with the struct-level rule for
// category queries: an inverted price window is rejected before any network
// call is made.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(categoryQueryValidation, models.CategoryQuery{})
	return validate
}

func categoryQueryValidation(sl validator.StructLevel) {
	query := sl.Current().Interface().(models.CategoryQuery)

	// MaxPrice 0 means no upper bound, so the window check applies only
	// when an upper bound is set. Negative values are already rejected by
	// the field-level gte tags.
	if query.MaxPrice != 0 && query.MinPrice > query.MaxPrice {
		sl.ReportError(query.MinPrice, "MinPrice", "minPrice", "pricewindow", "")
	}
}
