package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the identity stored by the bearer middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// authenticate resolves the bearer token into a user id. Requests without a
// valid token never reach the wrapped handler.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.guard.Identify(r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			h.logger.Debug(r.Context(), "rejected credential", "path", r.URL.Path, "error", err.Error())
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// requireOwner compares the authenticated identity with the {user_id} path
// segment.
func (h *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ := UserIDFromContext(r.Context())
		if err := h.guard.AssertOwner(caller, chi.URLParam(r, "user_id")); err != nil {
			h.logger.Warn(r.Context(), "owner mismatch", "caller", caller, "path", r.URL.Path)
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one line per request once the response is done.
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
