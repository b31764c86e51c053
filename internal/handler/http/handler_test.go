// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks for the service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString != "valid-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: 7}, nil
}

type mockProfileService struct {
	getProfilesFn   func(ctx context.Context, userID int64) ([]models.Profile, error)
	createProfileFn func(ctx context.Context, userID int64, upsert models.ProfileUpsert) (models.Profile, error)
	updateProfileFn func(ctx context.Context, userID, profileID int64, upsert models.ProfileUpsert) (models.Profile, error)
}

func (m *mockProfileService) GetProfiles(ctx context.Context, userID int64) ([]models.Profile, error) {
	return m.getProfilesFn(ctx, userID)
}

func (m *mockProfileService) CreateProfile(ctx context.Context, userID int64, upsert models.ProfileUpsert) (models.Profile, error) {
	return m.createProfileFn(ctx, userID, upsert)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID, profileID int64, upsert models.ProfileUpsert) (models.Profile, error) {
	return m.updateProfileFn(ctx, userID, profileID, upsert)
}

type mockVIPService struct {
	getVIPsFn   func(ctx context.Context, userID int64) ([]models.VIP, error)
	createVIPFn func(ctx context.Context, userID int64, create models.VIPCreate) (models.VIP, error)
	deleteVIPFn func(ctx context.Context, userID, vipID int64) error
}

func (m *mockVIPService) GetVIPs(ctx context.Context, userID int64) ([]models.VIP, error) {
	return m.getVIPsFn(ctx, userID)
}

func (m *mockVIPService) CreateVIP(ctx context.Context, userID int64, create models.VIPCreate) (models.VIP, error) {
	return m.createVIPFn(ctx, userID, create)
}

func (m *mockVIPService) DeleteVIP(ctx context.Context, userID, vipID int64) error {
	return m.deleteVIPFn(ctx, userID, vipID)
}

type mockSyncService struct {
	pushFn func(ctx context.Context, userID int64, request models.SyncPushRequest) (models.SyncPushResponse, error)
	pullFn func(ctx context.Context, userID int64, since *time.Time) (models.SyncPullResponse, error)
}

func (m *mockSyncService) Push(ctx context.Context, userID int64, request models.SyncPushRequest) (models.SyncPushResponse, error) {
	return m.pushFn(ctx, userID, request)
}

func (m *mockSyncService) Pull(ctx context.Context, userID int64, since *time.Time) (models.SyncPullResponse, error) {
	return m.pullFn(ctx, userID, since)
}

type mockUserService struct {
	meFn           func(ctx context.Context, userID int64) (models.User, error)
	upgradeToProFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserService) Me(ctx context.Context, userID int64) (models.User, error) {
	return m.meFn(ctx, userID)
}

func (m *mockUserService) UpgradeToPro(ctx context.Context, userID int64) (models.User, error) {
	return m.upgradeToProFn(ctx, userID)
}

type mockRecommendationService struct {
	deferralWindowsFn func(ctx context.Context, userID int64) ([]models.DeferralRecommendation, error)
}

func (m *mockRecommendationService) DeferralWindows(ctx context.Context, userID int64) ([]models.DeferralRecommendation, error) {
	return m.deferralWindowsFn(ctx, userID)
}

type mockPinger struct {
	pingErr error
}

func (m *mockPinger) PingContext(_ context.Context) error {
	return m.pingErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil fields
// stay nil and panic if a test unexpectedly reaches them.
func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		pinger:   &mockPinger{},
		version:  "test",
		logger:   logger.Nop(),
	}
}

// doRequest routes the request through the full router, auth middleware
// included.
func doRequest(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withBearer marks the request as authenticated for the default
// mockAuthService.ParseToken stub.
func withBearer(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

// decodeErrorResponse parses the uniform error envelope.
func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

var errBoom = errors.New("boom")
