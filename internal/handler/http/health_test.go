package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_ReportsServiceInfo(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.RootHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, serviceName, response.Service)
	assert.Equal(t, "test", response.Version)
	assert.NotEmpty(t, response.Timestamp)
}

func TestHealth_DatabaseConnected(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "connected", response.Database)
}

func TestHealth_DatabaseUnreachable(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	h.pinger = &mockPinger{pingErr: context.DeadlineExceeded}

	rec := doRequest(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "degraded", response.Status)
	assert.Equal(t, "unreachable", response.Database)
}
