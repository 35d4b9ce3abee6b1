package http

import (
	"errors"
	"net/http"

	"github.com/mindpad-app/mindpad/internal/service"
	"github.com/mindpad-app/mindpad/internal/store"
	"github.com/mindpad-app/mindpad/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidEmail:            http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,
	service.ErrNoteIDRequired:          http.StatusBadRequest,
	service.ErrInvalidAction:           http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrNoteNotSaved:     http.StatusInternalServerError,
	store.ErrHistoryNotSaved:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeErrorFromService maps a service-layer error to its HTTP status and
// writes the uniform JSON error body. Internal errors are masked with the
// generic status text so no storage detail leaks to clients.
func writeErrorFromService(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSONError(w, message, status)
}
