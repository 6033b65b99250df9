package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/storegate/gateway/internal/upstream"
)

func TestWithTraceID_GeneratesHeader(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		SearchByName(gomock.Any(), "").
		Return(nil, upstream.Status(http.StatusOK), nil)

	req := httptest.NewRequest(http.MethodGet, "/product/name", nil)
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	traceID := rec.Header().Get("X-Trace-ID")
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTraceID_EchoesIncomingHeader(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		SearchByName(gomock.Any(), "").
		Return(nil, upstream.Status(http.StatusOK), nil)

	req := httptest.NewRequest(http.MethodGet, "/product/name", nil)
	req.Header.Set("X-Trace-ID", "caller-supplied-id")
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get("X-Trace-ID"))
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/nothing/here", nil)
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPing(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
