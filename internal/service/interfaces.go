package service

import (
	"context"

	"github.com/storegate/gateway/internal/upstream"
	"github.com/storegate/gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// CatalogService is the internal contract for product queries. It validates,
// filters, and paginates upstream collections client-side; the upstream
// status travels alongside every result so the boundary can map it to a
// response code.
type CatalogService interface {
	// ListProducts fetches the full product collection and applies the
	// query pipeline: description-length filter, then skip, then limit
	// (limit 0 means unbounded). On a non-success upstream status the raw
	// payload is returned unchanged and no filtering happens.
	ListProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, upstream.Status, error)

	// ProductByID fetches a single product. No transformation.
	ProductByID(ctx context.Context, id int) (models.Product, upstream.Status, error)

	// ListByCategoryAndPrice validates the category against the upstream
	// category list first (an unknown category short-circuits to NotFound
	// without a category-scoped fetch), then filters the category
	// collection by the price window (MaxPrice 0 means no upper bound).
	//
	// Callers must reject queries with MaxPrice != 0 and
	// MinPrice > MaxPrice before invoking this operation.
	ListByCategoryAndPrice(ctx context.Context, query models.CategoryQuery) ([]models.Product, upstream.Status, error)

	// SearchByName delegates to the upstream free-text search. No local
	// filtering.
	SearchByName(ctx context.Context, productName string) ([]models.Product, upstream.Status, error)
}

// DirectoryService is the internal contract for user queries and login.
type DirectoryService interface {
	// ListUsers fetches the user collection. The pagination parameters are
	// accepted for contract stability but deliberately not applied.
	ListUsers(ctx context.Context, query models.UserQuery) ([]models.User, upstream.Status, error)

	// UserByID fetches a single user. No transformation.
	UserByID(ctx context.Context, id int) (models.User, upstream.Status, error)

	// Login exchanges the credential pair with the upstream identity
	// endpoint, merges the role from a follow-up fetch of the full user
	// record, and attaches a freshly issued session token. A failed
	// exchange yields an absent user with an Unauthorized status and no
	// token is ever issued for it.
	Login(ctx context.Context, login models.LoginRequest) (models.User, upstream.Status, error)
}

// SecurityService handles credential computation and session-token
// lifecycle.
type SecurityService interface {
	// HashPassword derives a (hash, salt) credential pair for the
	// password. The salt is a fresh random key on every call.
	HashPassword(password string) (models.Credential, error)

	// VerifyPassword recomputes the keyed hash of password with storedSalt
	// and compares it against storedHash, examining every byte.
	VerifyPassword(password string, storedHash, storedSalt []byte) bool

	// IssueToken signs a session token for the user. The claim set carries
	// the username and role; expiry is the configured token duration.
	IssueToken(user models.User) (string, error)

	// ParseToken validates a raw token string (signature, issuer, expiry)
	// and returns its claims.
	ParseToken(tokenString string) (models.TokenClaims, error)
}
