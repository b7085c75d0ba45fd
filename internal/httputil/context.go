package httputil

import (
	"context"
	"net/http"

	"noteful/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	folderKey    contextKey = "folder"
	noteKey      contextKey = "note"
	requestIDKey contextKey = "requestID"
)

// WithFolder attaches a resolved folder to the request context
func WithFolder(r *http.Request, folder *models.Folder) *http.Request {
	ctx := context.WithValue(r.Context(), folderKey, folder)
	return r.WithContext(ctx)
}

// FolderFrom retrieves the resolved folder from context, nil if not set
func FolderFrom(r *http.Request) *models.Folder {
	folder, _ := r.Context().Value(folderKey).(*models.Folder)
	return folder
}

// WithNote attaches a resolved note to the request context
func WithNote(r *http.Request, note *models.Note) *http.Request {
	ctx := context.WithValue(r.Context(), noteKey, note)
	return r.WithContext(ctx)
}

// NoteFrom retrieves the resolved note from context, nil if not set
func NoteFrom(r *http.Request) *models.Note {
	note, _ := r.Context().Value(noteKey).(*models.Note)
	return note
}

// WithRequestID adds a request id to the request context
func WithRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, id)
	return r.WithContext(ctx)
}

// RequestIDFrom retrieves the request id from context, empty string if not set
func RequestIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
