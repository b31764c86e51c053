package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Me returns the account record of the authenticated user.
func (u *userService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpgradeToPro flips the user's account to the Pro tier. Upgrading an
// already-Pro account is a no-op that reports the current state.
func (u *userService) UpgradeToPro(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.UpgradeToPro(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("pro upgrade failed")
		return models.User{}, fmt.Errorf("pro upgrade failed: %w", err)
	}

	return user, nil
}
