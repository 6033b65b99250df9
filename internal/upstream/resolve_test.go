package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storegate/gateway/models"
)

// respond spins a one-shot server and returns the raw resty response for
// the given status code and body.
func respond(t *testing.T, statusCode int, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	// DoNotParseResponse is not needed: Resolve works on the raw body.
	resp, err := resty.New().SetBaseURL(srv.URL).R().Get("/")
	require.NoError(t, err)
	return resp
}

func TestResolve_SuccessDeserializesPayload(t *testing.T) {
	resp := respond(t, http.StatusOK, `{"ID": 7, "Title": "Pen", "PRICE": 1.5}`)

	product, status, err := Resolve[models.Product](context.Background(), resp)

	require.NoError(t, err)
	assert.Equal(t, Status(http.StatusOK), status)
	assert.True(t, status.Success())
	// field matching is case-insensitive
	assert.Equal(t, 7, product.ID)
	assert.Equal(t, "Pen", product.Title)
	assert.Equal(t, 1.5, product.Price)
}

func TestResolve_NonSuccessLeavesPayloadAbsent(t *testing.T) {
	resp := respond(t, http.StatusNotFound, `{"message": "Product with id '0' not found"}`)

	product, status, err := Resolve[models.Product](context.Background(), resp)

	require.NoError(t, err)
	assert.Equal(t, Status(http.StatusNotFound), status)
	assert.False(t, status.Success())
	assert.Zero(t, product)
}

func TestResolve_StatusIsReturnedVerbatim(t *testing.T) {
	resp := respond(t, http.StatusTeapot, `{}`)

	_, status, err := Resolve[models.Product](context.Background(), resp)

	require.NoError(t, err)
	assert.Equal(t, Status(http.StatusTeapot), status)
}

func TestResolve_MalformedBodyIsFatal(t *testing.T) {
	resp := respond(t, http.StatusOK, `{"products": [`)

	payload, _, err := Resolve[models.ProductsResponse](context.Background(), resp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode upstream response")
	assert.Zero(t, payload)
}

func TestResolve_EmptySuccessBody(t *testing.T) {
	resp := respond(t, http.StatusOK, "")

	product, status, err := Resolve[models.Product](context.Background(), resp)

	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Zero(t, product)
}

func TestResolve_CancelledContextAborts(t *testing.T) {
	resp := respond(t, http.StatusOK, `{"id": 1}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Resolve[models.Product](ctx, resp)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
