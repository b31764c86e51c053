package store

import (
	"context"
	"time"

	"github.com/MKhiriev/quiet-inbox/models"
)

type UserRepository interface {
	// CreateUser persists a new account together with its default
	// quiet-hours profile in a single transaction.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByDeviceID(ctx context.Context, deviceID string) (models.User, error)

	// UpgradeToPro sets the pro-tier flag on the account.
	UpgradeToPro(ctx context.Context, userID int64) (models.User, error)
}

type ProfileRepository interface {
	GetProfiles(ctx context.Context, userID int64) ([]models.Profile, error)
	CountProfiles(ctx context.Context, userID int64) (int64, error)
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

type VIPRepository interface {
	GetVIPs(ctx context.Context, userID int64) ([]models.VIP, error)
	CreateVIP(ctx context.Context, vip models.VIP) (models.VIP, error)
	DeleteVIP(ctx context.Context, userID, vipID int64) error
}

type SyncRepository interface {
	// PushSyncRecords inserts the batch atomically, skipping items whose
	// (device_id, local_id) pair is already present, and advances the
	// owner's last_sync watermark. Returns the number of rows inserted.
	PushSyncRecords(ctx context.Context, userID int64, deviceID string, items []models.SyncItem) (int, error)

	// PullSyncRecords returns the user's records newer than the optional
	// since watermark, newest first, capped at [models.SyncPullPageSize].
	PullSyncRecords(ctx context.Context, userID int64, since *time.Time) ([]models.SyncRecord, error)
}

// Pinger is the minimal health-check contract exposed to the HTTP layer.
type Pinger interface {
	PingContext(ctx context.Context) error
}
