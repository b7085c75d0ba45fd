package handler

import (
	"log/slog"
	"net/http"

	"noteful/internal/httputil"
	"noteful/internal/middleware"
	"noteful/internal/service"
)

// NewRouter wires resource handlers and the shared id-resolution middleware
// into a ServeMux covering the full HTTP surface (Go 1.22+ method patterns).
func NewRouter(folderSvc service.FolderService, noteSvc service.NoteService, logger *slog.Logger) *http.ServeMux {
	folderHandler := NewFolderHandler(folderSvc, logger)
	noteHandler := NewNoteHandler(noteSvc, logger)

	resolveFolder := middleware.ResolveFolder(folderSvc, logger)
	resolveNote := middleware.ResolveNote(noteSvc, logger)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthCheck)

	// Folder routes
	mux.HandleFunc("GET /folders", folderHandler.ListFolders)
	mux.HandleFunc("POST /folders", folderHandler.CreateFolder)
	mux.Handle("GET /folders/{id}", resolveFolder(http.HandlerFunc(folderHandler.GetFolder)))
	mux.Handle("PATCH /folders/{id}", resolveFolder(http.HandlerFunc(folderHandler.UpdateFolder)))
	mux.Handle("DELETE /folders/{id}", resolveFolder(http.HandlerFunc(folderHandler.DeleteFolder)))

	// Note routes
	mux.HandleFunc("GET /notes", noteHandler.ListNotes)
	mux.HandleFunc("POST /notes", noteHandler.CreateNote)
	mux.Handle("GET /notes/{id}", resolveNote(http.HandlerFunc(noteHandler.GetNote)))
	mux.Handle("PATCH /notes/{id}", resolveNote(http.HandlerFunc(noteHandler.UpdateNote)))
	mux.Handle("DELETE /notes/{id}", resolveNote(http.HandlerFunc(noteHandler.DeleteNote)))

	return mux
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
