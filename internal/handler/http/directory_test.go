package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/storegate/gateway/internal/service"
	"github.com/storegate/gateway/internal/upstream"
	"github.com/storegate/gateway/models"
)

func TestGetUsers_RequiresToken(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUsers_WithValidToken(t *testing.T) {
	th := newTestHandler(t)

	th.security.EXPECT().
		ParseToken("valid-token").
		Return(models.TokenClaims{Username: "emilys", Role: "admin"}, nil)
	th.directory.EXPECT().
		ListUsers(gomock.Any(), models.UserQuery{Limit: 5, Skip: 10}).
		Return([]models.User{{ID: 1, Username: "emilys"}}, upstream.Status(http.StatusOK), nil)

	req := httptest.NewRequest(http.MethodGet, "/user?limit=5&skip=10", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "emilys", got[0].Username)
}

func TestGetUsers_RejectsInvalidToken(t *testing.T) {
	th := newTestHandler(t)

	th.security.EXPECT().
		ParseToken("stale-token").
		Return(models.TokenClaims{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserByID_WithValidToken(t *testing.T) {
	th := newTestHandler(t)

	th.security.EXPECT().
		ParseToken("valid-token").
		Return(models.TokenClaims{Username: "emilys"}, nil)
	th.directory.EXPECT().
		UserByID(gomock.Any(), 5).
		Return(models.User{ID: 5, Username: "jamesd"}, upstream.Status(http.StatusOK), nil)

	req := httptest.NewRequest(http.MethodGet, "/user/5", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserByID_MissingBearerScheme(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/user/5", nil)
	req.Header.Set("Authorization", "just-a-token")
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	th := newTestHandler(t)

	th.directory.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "emily.johnson@x.dummyjson.com", Password: "emilyspass"}).
		Return(models.User{ID: 1, Username: "emilys", Role: models.RoleAdmin, Token: "signed-token"}, upstream.Status(http.StatusOK), nil)

	body := `{"email":"emily.johnson@x.dummyjson.com","password":"emilyspass"}`
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "signed-token", got.Token)
}

func TestLogin_NoAuthorizationRequired(t *testing.T) {
	th := newTestHandler(t)

	th.directory.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, upstream.Status(http.StatusUnauthorized), nil)

	// The login route sits outside the protected group: no bearer token,
	// and the response comes from the service, not the middleware.
	body := `{"email":"nobody@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidJSONIsBadRequest(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MissingCredentialsIsBadRequest(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_TokenCreationFailureIsInternalError(t *testing.T) {
	th := newTestHandler(t)

	th.directory.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, upstream.Status(http.StatusOK), service.ErrTokenCreationFailed)

	body := `{"email":"emily.johnson@x.dummyjson.com","password":"emilyspass"}`
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogin_TransportFailureIsBadGateway(t *testing.T) {
	th := newTestHandler(t)

	th.directory.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, upstream.Status(0), assert.AnError)

	body := `{"email":"emily.johnson@x.dummyjson.com","password":"emilyspass"}`
	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	th.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
