package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// Error kinds reported in the "error" field of every failure body.
const (
	kindValidation         = "validation_error"
	kindUnauthenticated    = "unauthenticated"
	kindInvalidToken       = "invalid_token"
	kindInvalidCredentials = "invalid_credentials"
	kindForbidden          = "forbidden"
	kindDuplicateEmail     = "duplicate_email"
	kindNotFound           = "not_found"
	kindInternal           = "internal_error"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify maps a service error to its HTTP status, kind and client-facing
// message. Unknown errors become a generic 500.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusUnprocessableEntity, kindValidation, err.Error()
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized, kindUnauthenticated, common.ErrUnauthenticated.Error()
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, kindInvalidToken, "invalid or expired token"
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, kindInvalidCredentials, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, kindForbidden, "access denied"
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusBadRequest, kindDuplicateEmail, common.ErrDuplicateEmail.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, kindNotFound, "task not found"
	default:
		return http.StatusInternalServerError, kindInternal, "internal server error"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, msg := classify(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", common.BearerScheme)
	}
	writeJSON(w, status, errorResponse{Error: kind, Message: msg})
}
