package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"noteful/internal/domain"
	"noteful/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Validation and
// not-found errors carry their own status and exact message; anything else
// is a store-level failure and surfaces as an opaque 500.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	logger.Error("request failed", "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}
