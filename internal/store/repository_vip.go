package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/models"
)

// vipRepository is the PostgreSQL-backed implementation of [VIPRepository].
// Reads and deletes are scoped by the owning user.
type vipRepository struct {
	*DB
	logger *logger.Logger
}

// NewVIPRepository constructs a [VIPRepository] backed by the provided
// database connection and logger.
func NewVIPRepository(db *DB, logger *logger.Logger) VIPRepository {
	logger.Debug().Msg("creating vip repository")
	return &vipRepository{
		DB:     db,
		logger: logger,
	}
}

// GetVIPs returns every VIP contact owned by the given user, oldest first.
func (v *vipRepository) GetVIPs(ctx context.Context, userID int64) ([]models.VIP, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := v.DB.QueryContext(ctx, getUserVIPs, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "vipRepository.GetVIPs").
			Int64("user_id", userID).
			Bool("retryable", v.DB.retryable(queryErr)).
			Msg("failed to execute query for getting user vips")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	vips := make([]models.VIP, 0, 8)

	for rows.Next() {
		var vip models.VIP

		scanErr := rows.Scan(
			&vip.VIPID,
			&vip.UserID,
			&vip.AppPackage,
			&vip.Identifier,
			&vip.Priority,
			&vip.BypassQuietHours,
			&vip.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vipRepository.GetVIPs").
				Int64("user_id", userID).
				Msg("failed to scan vip row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		vips = append(vips, vip)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vipRepository.GetVIPs").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vips, nil
}

// CreateVIP persists a new VIP contact and returns the canonical database
// representation with server-assigned fields (VIPID, CreatedAt).
func (v *vipRepository) CreateVIP(ctx context.Context, vip models.VIP) (models.VIP, error) {
	log := logger.FromContext(ctx)

	row := v.DB.QueryRowContext(ctx, createVIP,
		vip.UserID, vip.AppPackage, vip.Identifier, vip.Priority, vip.BypassQuietHours)

	if err := row.Scan(
		&vip.VIPID,
		&vip.UserID,
		&vip.AppPackage,
		&vip.Identifier,
		&vip.Priority,
		&vip.BypassQuietHours,
		&vip.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "vipRepository.CreateVIP").
			Int64("user_id", vip.UserID).
			Bool("retryable", v.DB.retryable(err)).
			Msg("failed to insert vip")
		return models.VIP{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return vip, nil
}

// DeleteVIP removes the VIP contact identified by (userID, vipID).
//
// Error handling:
//   - Zero rows affected (wrong id or different owner) → [ErrVIPNotFound].
//   - Driver failures → wrapped [ErrExecutingStatement].
func (v *vipRepository) DeleteVIP(ctx context.Context, userID, vipID int64) error {
	log := logger.FromContext(ctx)

	result, err := v.DB.ExecContext(ctx, deleteVIP, userID, vipID)
	if err != nil {
		log.Err(err).
			Str("func", "vipRepository.DeleteVIP").
			Int64("user_id", userID).
			Int64("vip_id", vipID).
			Bool("retryable", v.DB.retryable(err)).
			Msg("failed to delete vip")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVIPNotFound
	}

	return nil
}
