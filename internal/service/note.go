package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"noteful/internal/domain"
	"noteful/internal/domain/models"
	"noteful/internal/domain/repositories"
)

// noteNotFoundMessage is lowercase while the folder message is capitalized;
// both are pinned by API consumers and must not be unified.
const noteNotFoundMessage = "note doesn't exist"

// CreateNoteRequest carries a note create payload. All five fields are
// required at creation time; pointers distinguish absent/null from present.
type CreateNoteRequest struct {
	ID       *string    `json:"id"`
	Name     *string    `json:"name"`
	Modified *time.Time `json:"modified"`
	FolderID *string    `json:"noteId"`
	Content  *string    `json:"content"`
}

// UpdateNoteRequest carries a partial note update. The note's id is taken
// from the path, never from the payload.
type UpdateNoteRequest struct {
	Name     *string    `json:"name"`
	Modified *time.Time `json:"modified"`
	FolderID *string    `json:"noteId"`
	Content  *string    `json:"content"`
}

// NoteService owns the note validation and lifecycle contract.
type NoteService interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, req *CreateNoteRequest) (*models.Note, error)
	UpdateNote(ctx context.Context, current *models.Note, req *UpdateNoteRequest) error
	DeleteNote(ctx context.Context, id string) error
}

type noteService struct {
	noteRepo repositories.NoteRepository
	logger   *slog.Logger
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo repositories.NoteRepository, logger *slog.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// ListNotes returns all notes
func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepo.List(ctx)
}

// GetNote retrieves a note by id
func (s *noteService) GetNote(ctx context.Context, id string) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Message: noteNotFoundMessage}
		}
		return nil, err
	}
	return note, nil
}

// CreateNote validates required fields in declared order and inserts the
// note, returning the row as persisted.
func (s *noteService) CreateNote(ctx context.Context, req *CreateNoteRequest) (*models.Note, error) {
	// First missing field wins; errors are never aggregated. The declared
	// order is part of the API contract.
	required := []struct {
		name  string
		value interface{}
	}{
		{"id", req.ID},
		{"name", req.Name},
		{"modified", req.Modified},
		{"noteId", req.FolderID},
		{"content", req.Content},
	}
	for _, field := range required {
		if err := validation.Validate(field.value, validation.NotNil); err != nil {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("Missing '%s' in request body", field.name),
			}
		}
	}

	note := &models.Note{
		ID:       *req.ID,
		Name:     *req.Name,
		Modified: *req.Modified,
		FolderID: *req.FolderID,
		Content:  *req.Content,
	}

	stored, err := s.noteRepo.Insert(ctx, note)
	if err != nil {
		return nil, err
	}

	s.logger.Info("note created", "id", stored.ID, "folder_id", stored.FolderID)
	return stored, nil
}

// UpdateNote merges the recognized, present fields of req into current and
// persists the result. A payload with no recognized fields is rejected.
func (s *noteService) UpdateNote(ctx context.Context, current *models.Note, req *UpdateNoteRequest) error {
	merged := *current
	recognized := 0

	if req.Name != nil && *req.Name != "" {
		merged.Name = *req.Name
		recognized++
	}
	if req.Modified != nil && !req.Modified.IsZero() {
		merged.Modified = *req.Modified
		recognized++
	}
	if req.FolderID != nil && *req.FolderID != "" {
		merged.FolderID = *req.FolderID
		recognized++
	}
	if req.Content != nil && *req.Content != "" {
		merged.Content = *req.Content
		recognized++
	}

	if recognized == 0 {
		return &domain.ValidationError{Message: "Request body must have a 'name'"}
	}

	if err := s.noteRepo.Update(ctx, current.ID, &merged); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Message: noteNotFoundMessage}
		}
		return err
	}

	s.logger.Info("note updated", "id", current.ID)
	return nil
}

// DeleteNote removes a note by id
func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Message: noteNotFoundMessage}
		}
		return err
	}

	s.logger.Info("note deleted", "id", id)
	return nil
}
