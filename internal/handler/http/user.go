package http

import (
	"net/http"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
	"github.com/MKhiriev/quiet-inbox/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.Me(ctx, userID)
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) upgradeToPro(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.UpgradeToPro(ctx, userID)
	if err != nil {
		log.Err(err).Msg("pro upgrade failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: "upgraded", IsPro: &user.IsPro}, http.StatusOK)
}
