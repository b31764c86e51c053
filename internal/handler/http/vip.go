package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
	"github.com/MKhiriev/quiet-inbox/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getVIPs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vips, err := h.services.VIPService.GetVIPs(ctx, userID)
	if err != nil {
		log.Err(err).Msg("VIP listing failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, vips, http.StatusOK)
}

func (h *Handler) createVIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.VIPCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	vip, err := h.services.VIPService.CreateVIP(ctx, userID, create)
	if err != nil {
		log.Err(err).Msg("VIP creation failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, vip, http.StatusCreated)
}

func (h *Handler) deleteVIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vipID, err := strconv.ParseInt(chi.URLParam(r, "vipID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid VIP ID in path")
		utils.WriteError(w, "invalid VIP ID", http.StatusBadRequest)
		return
	}

	if err = h.services.VIPService.DeleteVIP(ctx, userID, vipID); err != nil {
		log.Err(err).Int64("vip_id", vipID).Msg("VIP deletion failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "deleted"}, http.StatusOK)
}
