package service

import (
	"context"
	"time"

	"github.com/MKhiriev/quiet-inbox/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfiles(ctx context.Context, userID int64) ([]models.Profile, error)
	CreateProfile(ctx context.Context, userID int64, upsert models.ProfileUpsert) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID, profileID int64, upsert models.ProfileUpsert) (models.Profile, error)
}

type VIPService interface {
	GetVIPs(ctx context.Context, userID int64) ([]models.VIP, error)
	CreateVIP(ctx context.Context, userID int64, create models.VIPCreate) (models.VIP, error)
	DeleteVIP(ctx context.Context, userID, vipID int64) error
}

type SyncService interface {
	Push(ctx context.Context, userID int64, request models.SyncPushRequest) (models.SyncPushResponse, error)
	Pull(ctx context.Context, userID int64, since *time.Time) (models.SyncPullResponse, error)
}

type UserService interface {
	Me(ctx context.Context, userID int64) (models.User, error)
	UpgradeToPro(ctx context.Context, userID int64) (models.User, error)
}

type RecommendationService interface {
	DeferralWindows(ctx context.Context, userID int64) ([]models.DeferralRecommendation, error)
}
