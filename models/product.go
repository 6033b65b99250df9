package models

// Product is a single catalog item as returned by the upstream provider.
// Products are request-scoped value objects: they are created when an
// upstream response is resolved and discarded once the internal response
// has been written. They are never persisted or mutated after fetch.
type Product struct {
	// ID is the upstream-assigned unique product identifier.
	ID int `json:"id"`

	// Title is the product display name.
	Title string `json:"title"`

	// Price is the product price. Always non-negative upstream.
	Price float64 `json:"price"`

	// Description is free-form descriptive text. The upstream contract
	// bounds it at 100 characters; the catalog pipeline additionally
	// filters on its length per request.
	Description string `json:"description"`

	// Category is the upstream category slug the product belongs to.
	// Must be a member of the upstream category list.
	Category string `json:"category"`

	// Images is the ordered list of product image URLs.
	Images []string `json:"images"`
}
