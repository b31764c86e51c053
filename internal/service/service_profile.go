// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/models"
)

// profileService implements ProfileService on top of the profile and user
// repositories. The user repository is consulted for the Pro flag that gates
// profile creation.
type profileService struct {
	profileRepository store.ProfileRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// GetProfiles returns all quiet-hours profiles owned by the user, newest last.
func (p *profileService) GetProfiles(ctx context.Context, userID int64) ([]models.Profile, error) {
	profiles, err := p.profileRepository.GetProfiles(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("profile listing failed")
		return nil, fmt.Errorf("profile listing failed: %w", err)
	}

	return profiles, nil
}

// CreateProfile persists a new quiet-hours profile for the user.
//
// Free-tier accounts are limited to the single default profile created at
// registration; any further creation requires a Pro account.
//
// Returns the persisted profile or:
//   - ErrValidationNoProfileName if the name is empty.
//   - ErrValidationBadRulesJSON if the rules payload is not valid JSON.
//   - ErrProfileLimitReached if a free-tier user already has a profile.
func (p *profileService) CreateProfile(ctx context.Context, userID int64, upsert models.ProfileUpsert) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := validateProfileUpsert(upsert); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid profile data provided")
		return models.Profile{}, err
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup for profile creation failed")
		return models.Profile{}, fmt.Errorf("user lookup for profile creation failed: %w", err)
	}

	if !user.IsPro {
		count, countErr := p.profileRepository.CountProfiles(ctx, userID)
		if countErr != nil {
			log.Err(countErr).Int64("user_id", userID).Msg("profile counting failed")
			return models.Profile{}, fmt.Errorf("profile counting failed: %w", countErr)
		}
		if count >= 1 {
			return models.Profile{}, ErrProfileLimitReached
		}
	}

	profile, err := p.profileRepository.CreateProfile(ctx, models.Profile{
		UserID:          userID,
		Name:            upsert.Name,
		QuietHoursStart: upsert.QuietHoursStart,
		QuietHoursEnd:   upsert.QuietHoursEnd,
		RulesJSON:       upsert.RulesJSON,
		IsActive:        upsert.IsActive,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies the upsert to an existing profile owned by the user.
//
// Returns the updated profile or:
//   - ErrValidationNoProfileName / ErrValidationBadRulesJSON on bad input.
//   - A wrapped store.ErrProfileNotFound if no such profile belongs to the
//     user.
func (p *profileService) UpdateProfile(ctx context.Context, userID, profileID int64, upsert models.ProfileUpsert) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := validateProfileUpsert(upsert); err != nil {
		log.Error().Int64("user_id", userID).Int64("profile_id", profileID).Msg("invalid profile data provided")
		return models.Profile{}, err
	}

	profile, err := p.profileRepository.UpdateProfile(ctx, models.Profile{
		ProfileID:       profileID,
		UserID:          userID,
		Name:            upsert.Name,
		QuietHoursStart: upsert.QuietHoursStart,
		QuietHoursEnd:   upsert.QuietHoursEnd,
		RulesJSON:       upsert.RulesJSON,
		IsActive:        upsert.IsActive,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("profile_id", profileID).Msg("profile update ended with error")
		return models.Profile{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return profile, nil
}

func validateProfileUpsert(upsert models.ProfileUpsert) error {
	if upsert.Name == "" {
		return ErrValidationNoProfileName
	}
	if !models.ValidRulesJSON(upsert.RulesJSON) {
		return ErrValidationBadRulesJSON
	}

	return nil
}
