package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:          http.StatusBadRequest,
	service.ErrWrongCredentials:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:      http.StatusUnauthorized,
	service.ErrProfileLimitReached:          http.StatusForbidden,
	service.ErrValidationNoDeviceID:         http.StatusBadRequest,
	service.ErrValidationPartialCredentials: http.StatusBadRequest,
	service.ErrValidationNoProfileName:      http.StatusBadRequest,
	service.ErrValidationBadRulesJSON:       http.StatusBadRequest,
	service.ErrValidationNoAppPackage:       http.StatusBadRequest,
	service.ErrValidationNoVIPIdentifier:    http.StatusBadRequest,
	service.ErrValidationBadVIPPriority:     http.StatusBadRequest,
	service.ErrValidationBadSyncItem:        http.StatusBadRequest,

	store.ErrEmailAlreadyExists:      http.StatusBadRequest,
	store.ErrDeviceAlreadyRegistered: http.StatusBadRequest,
	store.ErrNoUserWasFound:          http.StatusNotFound,
	store.ErrProfileNotFound:         http.StatusNotFound,
	store.ErrVIPNotFound:             http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError picks the client-facing detail string for an error. Known
// sentinels surface their own message; anything else is hidden behind a
// generic one so internals never leak to the caller.
func detailFromError(err error) string {
	for target, status := range errorStatusMap {
		if status != http.StatusInternalServerError && errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeMappedError translates err into the uniform error envelope using the
// status and detail mappings above.
func writeMappedError(w http.ResponseWriter, err error) {
	utils.WriteError(w, detailFromError(err), statusFromError(err))
}
