// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
	"github.com/MKhiriev/quiet-inbox/models"
)

func (h *Handler) pushSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.SyncPushRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Push(ctx, userID, request)
	if err != nil {
		log.Err(err).Int("items", len(request.Items)).Msg("sync push failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) pullSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Err(err).Str("since", raw).Msg("invalid since watermark")
			utils.WriteError(w, "invalid `since` timestamp, expected RFC 3339", http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	response, err := h.services.SyncService.Pull(ctx, userID, since)
	if err != nil {
		log.Err(err).Msg("sync pull failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
