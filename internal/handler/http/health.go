// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
	"github.com/MKhiriev/quiet-inbox/models"
)

const serviceName = "QuietInbox API"

// root is the unauthenticated liveness check. It reports only that the
// process is up; database reachability is covered by health.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RootHealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// health additionally pings the database. A failed ping degrades the report
// and answers 503 so that load balancers take the instance out of rotation.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	statusCode := http.StatusOK

	if err := h.pinger.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		response.Status = "degraded"
		response.Database = "unreachable"
		statusCode = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, response, statusCode)
}
