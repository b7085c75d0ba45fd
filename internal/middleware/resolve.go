package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"noteful/internal/domain"
	"noteful/internal/httputil"
	"noteful/internal/service"
)

// ResolveFolder loads the folder named by the {id} path value once per
// request and attaches it to the context. A lookup miss short-circuits the
// route with the folder 404 body before the verb-specific handler runs.
func ResolveFolder(folders service.FolderService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("id")
			folder, err := folders.GetFolder(r.Context(), id)
			if err != nil {
				respondResolveError(w, logger, err)
				return
			}
			next.ServeHTTP(w, httputil.WithFolder(r, folder))
		})
	}
}

// ResolveNote is the note counterpart of ResolveFolder.
func ResolveNote(notes service.NoteService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.PathValue("id")
			note, err := notes.GetNote(r.Context(), id)
			if err != nil {
				respondResolveError(w, logger, err)
				return
			}
			next.ServeHTTP(w, httputil.WithNote(r, note))
		})
	}
}

func respondResolveError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	logger.Error("resolve record failed", "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}
