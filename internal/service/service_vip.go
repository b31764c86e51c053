package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/models"
)

type vipService struct {
	vipRepository store.VIPRepository
	logger        *logger.Logger
}

func NewVIPService(vipRepository store.VIPRepository, logger *logger.Logger) VIPService {
	return &vipService{
		vipRepository: vipRepository,
		logger:        logger,
	}
}

// GetVIPs returns all VIP contacts owned by the user.
func (v *vipService) GetVIPs(ctx context.Context, userID int64) ([]models.VIP, error) {
	vips, err := v.vipRepository.GetVIPs(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("VIP listing failed")
		return nil, fmt.Errorf("VIP listing failed: %w", err)
	}

	return vips, nil
}

// CreateVIP persists a new VIP contact for the user.
//
// Returns the persisted contact or:
//   - ErrValidationNoAppPackage / ErrValidationNoVIPIdentifier if the
//     identifying fields are empty.
//   - ErrValidationBadVIPPriority if the priority is outside 1..5.
func (v *vipService) CreateVIP(ctx context.Context, userID int64, create models.VIPCreate) (models.VIP, error) {
	log := logger.FromContext(ctx)

	if create.AppPackage == "" {
		log.Error().Int64("user_id", userID).Msg("VIP without app package")
		return models.VIP{}, ErrValidationNoAppPackage
	}
	if create.Identifier == "" {
		log.Error().Int64("user_id", userID).Msg("VIP without identifier")
		return models.VIP{}, ErrValidationNoVIPIdentifier
	}
	if create.Priority < models.VIPPriorityMin || create.Priority > models.VIPPriorityMax {
		log.Error().Int64("user_id", userID).Int("priority", create.Priority).Msg("VIP priority out of range")
		return models.VIP{}, ErrValidationBadVIPPriority
	}

	vip, err := v.vipRepository.CreateVIP(ctx, models.VIP{
		UserID:           userID,
		AppPackage:       create.AppPackage,
		Identifier:       create.Identifier,
		Priority:         create.Priority,
		BypassQuietHours: create.BypassQuietHours,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("VIP creation ended with error")
		return models.VIP{}, fmt.Errorf("VIP creation ended with error: %w", err)
	}

	return vip, nil
}

// DeleteVIP removes a VIP contact owned by the user.
//
// Returns a wrapped store.ErrVIPNotFound when no such contact belongs to the
// user, so deleting another user's contact is indistinguishable from deleting
// a missing one.
func (v *vipService) DeleteVIP(ctx context.Context, userID, vipID int64) error {
	if err := v.vipRepository.DeleteVIP(ctx, userID, vipID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("vip_id", vipID).Msg("VIP deletion ended with error")
		return fmt.Errorf("VIP deletion ended with error: %w", err)
	}

	return nil
}
