package http

import (
	"net/http"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
)

func (h *Handler) deferralWindows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	windows, err := h.services.RecommendationService.DeferralWindows(ctx, userID)
	if err != nil {
		log.Err(err).Msg("recommendation listing failed")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, windows, http.StatusOK)
}
