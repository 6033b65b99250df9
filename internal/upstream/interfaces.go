package upstream

import (
	"context"

	"github.com/storegate/gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/providers_mock.go -package=mock

// CatalogProvider defines the raw product fetches against the upstream
// catalog. Implementations perform one HTTP call per method, resolve the
// response, and return the upstream status verbatim. No filtering,
// pagination, or validation happens here; that is the service layer's job.
type CatalogProvider interface {
	// Products fetches the full upstream product collection in one call.
	Products(ctx context.Context) ([]models.Product, Status, error)

	// ProductByID fetches a single product record.
	ProductByID(ctx context.Context, id int) (models.Product, Status, error)

	// ProductsByCategory fetches the category-scoped product collection.
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, Status, error)

	// Categories fetches the upstream category list used for membership
	// validation.
	Categories(ctx context.Context) ([]string, Status, error)

	// SearchProducts delegates a free-text search to the upstream search
	// endpoint.
	SearchProducts(ctx context.Context, productName string) ([]models.Product, Status, error)
}

// DirectoryProvider defines the raw user fetches and the credential
// exchange against the upstream directory.
type DirectoryProvider interface {
	// Users fetches the full upstream user collection.
	Users(ctx context.Context) ([]models.User, Status, error)

	// UserByID fetches a single user record.
	UserByID(ctx context.Context, id int) (models.User, Status, error)

	// Login posts the credential pair to the identity exchange endpoint.
	// Field values are normalized to lowercase before serialization, as an
	// upstream compatibility requirement. The resolved user is partial:
	// the login response omits the role.
	Login(ctx context.Context, login models.LoginRequest) (models.User, Status, error)
}
