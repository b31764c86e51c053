package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVIP_Created(t *testing.T) {
	vips := &mockVIPService{
		createVIPFn: func(_ context.Context, userID int64, create models.VIPCreate) (models.VIP, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "com.whatsapp", create.AppPackage)
			return models.VIP{VIPID: 9, UserID: userID, AppPackage: create.AppPackage}, nil
		},
	}
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		VIPService:  vips,
	})

	req := withBearer(httptest.NewRequest(http.MethodPost, "/v1/vip",
		strings.NewReader(`{"app_package":"com.whatsapp","identifier":"+1555000111","priority":5,"bypass_quiet_hours":true}`)))
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response models.VIP
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(9), response.VIPID)
}

func TestCreateVIP_BadPriority(t *testing.T) {
	vips := &mockVIPService{
		createVIPFn: func(_ context.Context, _ int64, _ models.VIPCreate) (models.VIP, error) {
			return models.VIP{}, service.ErrValidationBadVIPPriority
		},
	}
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		VIPService:  vips,
	})

	req := withBearer(httptest.NewRequest(http.MethodPost, "/v1/vip",
		strings.NewReader(`{"app_package":"com.whatsapp","identifier":"x","priority":9}`)))
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteVIP_Success(t *testing.T) {
	vips := &mockVIPService{
		deleteVIPFn: func(_ context.Context, userID, vipID int64) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(9), vipID)
			return nil
		},
	}
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		VIPService:  vips,
	})

	req := withBearer(httptest.NewRequest(http.MethodDelete, "/v1/vip/9", nil))
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "deleted", response.Status)
}

func TestDeleteVIP_NotFound(t *testing.T) {
	vips := &mockVIPService{
		deleteVIPFn: func(_ context.Context, _, _ int64) error {
			return store.ErrVIPNotFound
		},
	}
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{},
		VIPService:  vips,
	})

	req := withBearer(httptest.NewRequest(http.MethodDelete, "/v1/vip/42", nil))
	rec := doRequest(t, h, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrVIPNotFound.Error(), decodeErrorResponse(t, rec).Detail)
}
