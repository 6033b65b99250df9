package http

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/mock"
	"github.com/storegate/gateway/internal/service"
)

// testHandler bundles a Handler with the gomock service doubles wired into
// it so every test can set expectations on the layer it exercises.
type testHandler struct {
	handler   *Handler
	catalog   *mock.MockCatalogService
	directory *mock.MockDirectoryService
	security  *mock.MockSecurityService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalog := mock.NewMockCatalogService(ctrl)
	directory := mock.NewMockDirectoryService(ctrl)
	security := mock.NewMockSecurityService(ctrl)

	services := &service.Services{
		Catalog:   catalog,
		Directory: directory,
		Security:  security,
	}

	return &testHandler{
		handler:   NewHandler(services, logger.Nop()),
		catalog:   catalog,
		directory: directory,
		security:  security,
	}
}
