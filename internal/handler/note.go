package handler

import (
	"log/slog"
	"net/http"
	"path"

	"noteful/internal/httputil"
	"noteful/internal/service"
)

// NoteHandler handles note HTTP requests
type NoteHandler struct {
	noteService service.NoteService
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService service.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// ListNotes returns all notes
// GET /notes
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.ListNotes(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newNoteListResponse(notes))
}

// GetNote returns the note resolved by the id-resolution middleware
// GET /notes/{id}
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	note := httputil.NoteFrom(r)
	if note == nil {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newNoteResponse(note))
}

// CreateNote creates a new note
// POST /notes
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req service.CreateNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.noteService.CreateNote(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, note.ID))
	httputil.RespondJSON(w, http.StatusCreated, newNoteResponse(note))
}

// UpdateNote merges a partial payload into the resolved note
// PATCH /notes/{id}
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	current := httputil.NoteFrom(r)
	if current == nil {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var req service.UpdateNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.noteService.UpdateNote(r.Context(), current, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteNote removes the resolved note
// DELETE /notes/{id}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	current := httputil.NoteFrom(r)
	if current == nil {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.noteService.DeleteNote(r.Context(), current.ID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
