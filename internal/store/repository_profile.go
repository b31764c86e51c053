package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. All reads and writes are scoped by the owning user so
// one account can never observe or modify another account's profiles.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// GetProfiles returns every profile owned by the given user, oldest first.
// An empty slice (not an error) is returned when the user owns none.
func (p *profileRepository) GetProfiles(ctx context.Context, userID int64) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getUserProfiles, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "profileRepository.GetProfiles").
			Int64("user_id", userID).
			Bool("retryable", p.DB.retryable(queryErr)).
			Msg("failed to execute query for getting user profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0, 4)

	for rows.Next() {
		var profile models.Profile

		scanErr := rows.Scan(
			&profile.ProfileID,
			&profile.UserID,
			&profile.Name,
			&profile.QuietHoursStart,
			&profile.QuietHoursEnd,
			&profile.RulesJSON,
			&profile.IsActive,
			&profile.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "profileRepository.GetProfiles").
				Int64("user_id", userID).
				Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "profileRepository.GetProfiles").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return profiles, nil
}

// CountProfiles returns the number of profiles owned by the given user.
// The count backs the one-profile-per-free-tier business rule.
func (p *profileRepository) CountProfiles(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := p.DB.QueryRowContext(ctx, countUserProfiles, userID).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "profileRepository.CountProfiles").
			Int64("user_id", userID).
			Bool("retryable", p.DB.retryable(err)).
			Msg("failed to count user profiles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CreateProfile persists a new profile and returns the canonical database
// representation with server-assigned fields (ProfileID, CreatedAt).
func (p *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createProfile,
		profile.UserID, profile.Name, profile.QuietHoursStart, profile.QuietHoursEnd, profile.RulesJSON, profile.IsActive)

	if err := row.Scan(
		&profile.ProfileID,
		&profile.UserID,
		&profile.Name,
		&profile.QuietHoursStart,
		&profile.QuietHoursEnd,
		&profile.RulesJSON,
		&profile.IsActive,
		&profile.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "profileRepository.CreateProfile").
			Int64("user_id", profile.UserID).
			Bool("retryable", p.DB.retryable(err)).
			Msg("failed to insert profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}

// UpdateProfile overwrites all mutable fields of the profile identified by
// (ProfileID, UserID) and returns the updated record.
//
// Error handling:
//   - No matching row (wrong id or different owner) → [ErrProfileNotFound].
//   - Query-building or driver failures → wrapped low-level sentinels.
func (p *profileRepository) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(profile)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.UpdateProfile").
			Int64("user_id", profile.UserID).
			Int64("profile_id", profile.ProfileID).
			Msg("failed to create query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Profile
	row := p.DB.QueryRowContext(ctx, query, args...)

	if err := row.Scan(
		&updated.ProfileID,
		&updated.UserID,
		&updated.Name,
		&updated.QuietHoursStart,
		&updated.QuietHoursEnd,
		&updated.RulesJSON,
		&updated.IsActive,
		&updated.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).
			Str("func", "profileRepository.UpdateProfile").
			Int64("user_id", profile.UserID).
			Int64("profile_id", profile.ProfileID).
			Bool("retryable", p.DB.retryable(err)).
			Msg("failed to update profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}
