package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/models"
)

// syncRepository is the PostgreSQL-backed implementation of [SyncRepository].
// It executes the push/pull reconciliation queries against the
// "notification_syncs" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, device_id, item count, etc.).
type syncRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository] backed by the provided
// database connection and logger.
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	logger.Debug().Msg("creating sync repository")
	return &syncRepository{
		DB:     db,
		logger: logger,
	}
}

// PushSyncRecords inserts the submitted batch in a single transaction.
//
// Each item is keyed by (device_id, local_id); the INSERT carries
// ON CONFLICT DO NOTHING, so an item the device has pushed before — whether
// in an earlier batch, a replayed batch after a dropped response, or a
// concurrent request that won the race — is skipped without error.
// RowsAffected after each insert tells whether the item was actually stored,
// which is what the returned accepted count is built from.
//
// After all items are processed the owner's last_sync watermark is advanced
// to the same server timestamp the inserted rows carry. Commit makes the
// whole batch visible at once; any failure rolls back every insert.
func (s *syncRepository) PushSyncRecords(ctx context.Context, userID int64, deviceID string, items []models.SyncItem) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.PushSyncRecords").
			Int64("user_id", userID).
			Msg("error starting transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	now := time.Now().UTC()
	accepted := 0

	for _, item := range items {
		payload := string(item.Data)
		if payload == "" {
			payload = "{}"
		}

		result, execErr := tx.ExecContext(ctx, insertSyncRecord,
			userID, deviceID, item.LocalID, item.Type, payload, now)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "syncRepository.PushSyncRecords").
				Int64("user_id", userID).
				Str("device_id", deviceID).
				Str("local_id", item.LocalID).
				Bool("retryable", s.DB.retryable(execErr)).
				Msg("failed to insert sync record")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		inserted, raErr := result.RowsAffected()
		if raErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, raErr)
		}

		accepted += int(inserted)
	}

	if _, err := tx.ExecContext(ctx, updateUserLastSync, userID, now); err != nil {
		log.Err(err).
			Str("func", "syncRepository.PushSyncRecords").
			Int64("user_id", userID).
			Bool("retryable", s.DB.retryable(err)).
			Msg("failed to update last_sync")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "syncRepository.PushSyncRecords").
			Int64("user_id", userID).
			Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Int64("user_id", userID).
		Str("device_id", deviceID).
		Int("submitted", len(items)).
		Int("accepted", accepted).
		Msg("sync push persisted")

	return accepted, nil
}

// PullSyncRecords returns the user's sync records newer than the optional
// since watermark, newest first, capped at [models.SyncPullPageSize].
//
// An empty slice is returned when the watermark is already past every stored
// record.
func (s *syncRepository) PullSyncRecords(ctx context.Context, userID int64, since *time.Time) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPullSyncQuery(userID, since)
	if err != nil {
		log.Err(err).
			Str("func", "syncRepository.PullSyncRecords").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := s.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "syncRepository.PullSyncRecords").
			Int64("user_id", userID).
			Bool("retryable", s.DB.retryable(queryErr)).
			Msg("failed to execute query for pulling sync records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	records := make([]models.SyncRecord, 0, models.SyncPullPageSize)

	for rows.Next() {
		var record models.SyncRecord

		scanErr := rows.Scan(
			&record.SyncID,
			&record.UserID,
			&record.DeviceID,
			&record.LocalID,
			&record.SyncType,
			&record.DataJSON,
			&record.SyncedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncRepository.PullSyncRecords").
				Int64("user_id", userID).
				Msg("failed to scan sync record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncRepository.PullSyncRecords").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
