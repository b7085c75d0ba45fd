package handler

import (
	"log/slog"
	"net/http"
	"path"

	"noteful/internal/httputil"
	"noteful/internal/service"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService service.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService service.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// ListFolders returns all folders
// GET /folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folderService.ListFolders(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newFolderListResponse(folders))
}

// GetFolder returns the folder resolved by the id-resolution middleware
// GET /folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	folder := httputil.FolderFrom(r)
	if folder == nil {
		// Route registered without the resolve middleware
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newFolderResponse(folder))
}

// CreateFolder creates a new folder
// POST /folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, folder.ID))
	httputil.RespondJSON(w, http.StatusCreated, newFolderResponse(folder))
}

// UpdateFolder merges a partial payload into the resolved folder
// PATCH /folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	current := httputil.FolderFrom(r)
	if current == nil {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var req service.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.folderService.UpdateFolder(r.Context(), current, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteFolder removes the resolved folder
// DELETE /folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	current := httputil.FolderFrom(r)
	if current == nil {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.folderService.DeleteFolder(r.Context(), current.ID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
