// Package service contains the gateway business logic: catalog filtering
// and pagination, user directory queries, login orchestration and
// credential/token handling. Services sit between the HTTP boundary and the
// upstream provider; they never talk to the network themselves.
package service

import (
	"github.com/rs/zerolog"

	"github.com/storegate/gateway/internal/config"
	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/upstream"
)

// Services aggregates every gateway service behind one constructor so the
// boundary layer receives a single dependency.
type Services struct {
	Catalog   CatalogService
	Directory DirectoryService
	Security  SecurityService
}

// NewServices wires the service layer on top of the given upstream
// provider. The security service is handed to the directory service so
// login can issue tokens.
func NewServices(catalog upstream.CatalogProvider, directory upstream.DirectoryProvider, cfg config.App, observer Observer, log *logger.Logger) *Services {
	if observer == nil {
		observer = NopObserver{}
	}
	security := NewSecurityService(cfg, log)
	return &Services{
		Catalog:   NewCatalogService(catalog, observer, log),
		Directory: NewDirectoryService(directory, security, observer, log),
		Security:  security,
	}
}

// componentLogger derives a child logger tagged with the service name.
func componentLogger(log *logger.Logger, component string) *logger.Logger {
	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
	return l
}
