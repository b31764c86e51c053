package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.VIPRepository
// ─────────────────────────────────────────────

type mockVIPRepository struct {
	getVIPsFn   func(ctx context.Context, userID int64) ([]models.VIP, error)
	createVIPFn func(ctx context.Context, vip models.VIP) (models.VIP, error)
	deleteVIPFn func(ctx context.Context, userID, vipID int64) error
}

func (m *mockVIPRepository) GetVIPs(ctx context.Context, userID int64) ([]models.VIP, error) {
	if m.getVIPsFn != nil {
		return m.getVIPsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockVIPRepository) CreateVIP(ctx context.Context, vip models.VIP) (models.VIP, error) {
	if m.createVIPFn != nil {
		return m.createVIPFn(ctx, vip)
	}
	vip.VIPID = 1
	return vip, nil
}

func (m *mockVIPRepository) DeleteVIP(ctx context.Context, userID, vipID int64) error {
	if m.deleteVIPFn != nil {
		return m.deleteVIPFn(ctx, userID, vipID)
	}
	return nil
}

func newTestVIPService(repo *mockVIPRepository) *vipService {
	return &vipService{
		vipRepository: repo,
		logger:        logger.Nop(),
	}
}

func validVIPCreate() models.VIPCreate {
	return models.VIPCreate{
		AppPackage:       "com.whatsapp",
		Identifier:       "+1555000111",
		Priority:         5,
		BypassQuietHours: true,
	}
}

// ─────────────────────────────────────────────
// CreateVIP
// ─────────────────────────────────────────────

func TestVIPService_CreateVIP_Success(t *testing.T) {
	repo := &mockVIPRepository{
		createVIPFn: func(_ context.Context, vip models.VIP) (models.VIP, error) {
			assert.Equal(t, int64(7), vip.UserID)
			assert.Equal(t, "com.whatsapp", vip.AppPackage)
			vip.VIPID = 9
			return vip, nil
		},
	}
	svc := newTestVIPService(repo)

	vip, err := svc.CreateVIP(context.Background(), 7, validVIPCreate())

	require.NoError(t, err)
	assert.Equal(t, int64(9), vip.VIPID)
}

func TestVIPService_CreateVIP_NoAppPackage(t *testing.T) {
	svc := newTestVIPService(&mockVIPRepository{})
	create := validVIPCreate()
	create.AppPackage = ""

	_, err := svc.CreateVIP(context.Background(), 7, create)

	assert.ErrorIs(t, err, ErrValidationNoAppPackage)
}

func TestVIPService_CreateVIP_NoIdentifier(t *testing.T) {
	svc := newTestVIPService(&mockVIPRepository{})
	create := validVIPCreate()
	create.Identifier = ""

	_, err := svc.CreateVIP(context.Background(), 7, create)

	assert.ErrorIs(t, err, ErrValidationNoVIPIdentifier)
}

func TestVIPService_CreateVIP_PriorityOutOfRange(t *testing.T) {
	svc := newTestVIPService(&mockVIPRepository{})

	for _, priority := range []int{0, -1, 6, 100} {
		create := validVIPCreate()
		create.Priority = priority

		_, err := svc.CreateVIP(context.Background(), 7, create)

		assert.ErrorIs(t, err, ErrValidationBadVIPPriority, "priority %d must be rejected", priority)
	}
}

func TestVIPService_CreateVIP_PriorityBounds(t *testing.T) {
	svc := newTestVIPService(&mockVIPRepository{})

	for _, priority := range []int{models.VIPPriorityMin, models.VIPPriorityMax} {
		create := validVIPCreate()
		create.Priority = priority

		_, err := svc.CreateVIP(context.Background(), 7, create)

		assert.NoError(t, err, "priority %d must be accepted", priority)
	}
}

// ─────────────────────────────────────────────
// DeleteVIP
// ─────────────────────────────────────────────

func TestVIPService_DeleteVIP_NotFound(t *testing.T) {
	repo := &mockVIPRepository{
		deleteVIPFn: func(_ context.Context, _, _ int64) error {
			return store.ErrVIPNotFound
		},
	}
	svc := newTestVIPService(repo)

	err := svc.DeleteVIP(context.Background(), 7, 42)

	assert.ErrorIs(t, err, store.ErrVIPNotFound)
}

func TestVIPService_DeleteVIP_Success(t *testing.T) {
	deleted := false
	repo := &mockVIPRepository{
		deleteVIPFn: func(_ context.Context, userID, vipID int64) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(9), vipID)
			deleted = true
			return nil
		},
	}
	svc := newTestVIPService(repo)

	err := svc.DeleteVIP(context.Background(), 7, 9)

	require.NoError(t, err)
	assert.True(t, deleted)
}
