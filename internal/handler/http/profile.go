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

func (h *Handler) getProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profiles, err := h.services.ProfileService.GetProfiles(ctx, userID)
	if err != nil {
		log.Err(err).Msg("profile listing failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var upsert models.ProfileUpsert
	if err := json.NewDecoder(r.Body).Decode(&upsert); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.CreateProfile(ctx, userID, upsert)
	if err != nil {
		log.Err(err).Msg("profile creation failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusCreated)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profileID, err := strconv.ParseInt(chi.URLParam(r, "profileID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid profile ID in path")
		utils.WriteError(w, "invalid profile ID", http.StatusBadRequest)
		return
	}

	var upsert models.ProfileUpsert
	if err = json.NewDecoder(r.Body).Decode(&upsert); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(ctx, userID, profileID, upsert)
	if err != nil {
		log.Err(err).Int64("profile_id", profileID).Msg("profile update failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
