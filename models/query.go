package models

// ProductQuery carries the parameters of a product listing request.
// Defaults (applied at the boundary): DescriptionLength 100, Limit 0,
// Skip 0. Limit 0 means "return everything remaining after Skip".
type ProductQuery struct {
	// DescriptionLength is the maximum description length a product may
	// have to survive the listing filter.
	DescriptionLength int `validate:"gte=0"`

	// Limit caps the number of returned products. 0 disables the cap.
	Limit int `validate:"gte=0"`

	// Skip drops the first N products that survive the length filter.
	Skip int `validate:"gte=0"`
}

// CategoryQuery carries the parameters of a category/price listing request.
// MaxPrice 0 means "no upper bound". A query with MaxPrice != 0 and
// MinPrice > MaxPrice is invalid and must be rejected before any upstream
// call; the cross-field rule is enforced by a struct-level validation
// registered in the handler package.
type CategoryQuery struct {
	Category string  `validate:"required"`
	MinPrice float64 `validate:"gte=0"`
	MaxPrice float64 `validate:"gte=0"`
}

// UserQuery carries the pagination parameters of a user listing request.
// The upstream directory contract accepts them but the gateway deliberately
// does not apply them; user listings are returned untransformed. The
// fields exist to keep the internal operation surface stable.
type UserQuery struct {
	Limit int `validate:"gte=0"`
	Skip  int `validate:"gte=0"`
}

// LoginRequest is the credential pair submitted to the identity exchange.
// Field values are normalized to lowercase before serialization; the
// upstream identity endpoint requires it.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
