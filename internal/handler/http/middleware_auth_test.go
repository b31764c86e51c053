package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_NoHeader(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/v1/user/me", nil)
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), decodeErrorResponse(t, rec).Detail)
}

func TestAuthMiddleware_HeaderWithoutToken(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/v1/user/me", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, ErrInvalidAuthorizationHeader.Error(), decodeErrorResponse(t, rec).Detail)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/v1/user/me", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), decodeErrorResponse(t, rec).Detail)
}

func TestAuthMiddleware_ValidTokenInjectsUserID(t *testing.T) {
	users := &mockUserService{
		meFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{UserID: userID}, nil
		},
	}
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		UserService: users,
	})

	req := withBearer(httptest.NewRequest(http.MethodGet, "/v1/user/me", nil))
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
