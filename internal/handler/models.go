package handler

import (
	"time"

	"noteful/internal/domain/models"
	"noteful/internal/sanitize"
)

// Response DTOs. Every outbound string field passes through the sanitizer
// exactly once here; stored values stay raw.

type folderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newFolderResponse(folder *models.Folder) folderResponse {
	return folderResponse{
		ID:   sanitize.Escape(folder.ID),
		Name: sanitize.Escape(folder.Name),
	}
}

func newFolderListResponse(folders []models.Folder) []folderResponse {
	out := make([]folderResponse, 0, len(folders))
	for i := range folders {
		out = append(out, newFolderResponse(&folders[i]))
	}
	return out
}

type noteResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Modified time.Time `json:"modified"`
	FolderID string    `json:"noteId"`
	Content  string    `json:"content"`
}

func newNoteResponse(note *models.Note) noteResponse {
	return noteResponse{
		ID:       sanitize.Escape(note.ID),
		Name:     sanitize.Escape(note.Name),
		Modified: note.Modified,
		FolderID: sanitize.Escape(note.FolderID),
		Content:  sanitize.Escape(note.Content),
	}
}

func newNoteListResponse(notes []models.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, newNoteResponse(&notes[i]))
	}
	return out
}
