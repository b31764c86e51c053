package service

import (
	"github.com/MKhiriev/quiet-inbox/internal/config"
	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
)

type Services struct {
	AuthService           AuthService
	ProfileService        ProfileService
	VIPService            VIPService
	SyncService           SyncService
	UserService           UserService
	RecommendationService RecommendationService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:           NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService:        NewProfileService(storages.ProfileRepository, storages.UserRepository, logger),
		VIPService:            NewVIPService(storages.VIPRepository, logger),
		SyncService:           NewSyncService(storages.SyncRepository, storages.UserRepository, logger),
		UserService:           NewUserService(storages.UserRepository, logger),
		RecommendationService: NewRecommendationService(),
	}
}
