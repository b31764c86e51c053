// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/models"
)

// syncService implements SyncService. Push batches are attributed to the
// device the account registered with; the user repository resolves it.
type syncService struct {
	syncRepository store.SyncRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewSyncService(syncRepository store.SyncRepository, userRepository store.UserRepository, logger *logger.Logger) SyncService {
	return &syncService{
		syncRepository: syncRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// Push persists a batch of sync items for the user.
//
// Every item must carry a local ID and a type; a batch with any malformed
// item is rejected whole. Items whose (device, local ID) pair was already
// seen are silently skipped, so replaying a batch is safe: SyncedCount
// reports only the newly inserted items. An empty batch succeeds with a
// count of zero.
func (s *syncService) Push(ctx context.Context, userID int64, request models.SyncPushRequest) (models.SyncPushResponse, error) {
	log := logger.FromContext(ctx)

	for _, item := range request.Items {
		if item.LocalID == "" || item.Type == "" {
			log.Error().Int64("user_id", userID).Msg("sync item without local ID or type")
			return models.SyncPushResponse{}, ErrValidationBadSyncItem
		}
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup for sync push failed")
		return models.SyncPushResponse{}, fmt.Errorf("user lookup for sync push failed: %w", err)
	}

	accepted, err := s.syncRepository.PushSyncRecords(ctx, userID, user.DeviceID, request.Items)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("sync push ended with error")
		return models.SyncPushResponse{}, fmt.Errorf("sync push ended with error: %w", err)
	}

	return models.SyncPushResponse{
		Success:         true,
		SyncedCount:     accepted,
		ServerTimestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Pull returns the user's sync records newer than the `since` watermark,
// newest first, capped at models.SyncPullPageSize. A nil watermark returns
// the newest page of the full history.
func (s *syncService) Pull(ctx context.Context, userID int64, since *time.Time) (models.SyncPullResponse, error) {
	records, err := s.syncRepository.PullSyncRecords(ctx, userID, since)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("sync pull ended with error")
		return models.SyncPullResponse{}, fmt.Errorf("sync pull ended with error: %w", err)
	}

	if records == nil {
		records = []models.SyncRecord{}
	}

	return models.SyncPullResponse{
		Success:         true,
		Items:           records,
		ServerTimestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
