package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"noteful/internal/domain"
	"noteful/internal/domain/models"
	"noteful/internal/domain/repositories"
)

// folderNotFoundMessage is pinned by API consumers; the casing differs from
// the note message on purpose.
const folderNotFoundMessage = "Folder doesn't exist"

// CreateFolderRequest carries a folder create payload. Pointer fields
// distinguish absent/null from present values.
type CreateFolderRequest struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// UpdateFolderRequest carries a partial folder update. Only the fields
// enumerated here are ever merged; anything else in the payload is dropped
// by JSON decoding.
type UpdateFolderRequest struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// FolderService owns the folder validation and lifecycle contract.
type FolderService interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	GetFolder(ctx context.Context, id string) (*models.Folder, error)
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)
	UpdateFolder(ctx context.Context, current *models.Folder, req *UpdateFolderRequest) error
	DeleteFolder(ctx context.Context, id string) error
}

type folderService struct {
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(folderRepo repositories.FolderRepository, logger *slog.Logger) FolderService {
	return &folderService{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// ListFolders returns all folders
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folderRepo.List(ctx)
}

// GetFolder retrieves a folder by id
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Message: folderNotFoundMessage}
		}
		return nil, err
	}
	return folder, nil
}

// CreateFolder validates required fields in declared order and inserts the
// folder, returning the row as persisted.
func (s *folderService) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error) {
	// First missing field wins; errors are never aggregated.
	required := []struct {
		name  string
		value interface{}
	}{
		{"id", req.ID},
		{"name", req.Name},
	}
	for _, field := range required {
		if err := validation.Validate(field.value, validation.NotNil); err != nil {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("Missing '%s' in request body", field.name),
			}
		}
	}

	folder := &models.Folder{
		ID:   *req.ID,
		Name: *req.Name,
	}

	stored, err := s.folderRepo.Insert(ctx, folder)
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "id", stored.ID)
	return stored, nil
}

// UpdateFolder merges the recognized, present fields of req into current and
// persists the result. A payload with no recognized fields is rejected.
func (s *folderService) UpdateFolder(ctx context.Context, current *models.Folder, req *UpdateFolderRequest) error {
	merged := *current
	recognized := 0

	if req.ID != nil && *req.ID != "" {
		merged.ID = *req.ID
		recognized++
	}
	if req.Name != nil && *req.Name != "" {
		merged.Name = *req.Name
		recognized++
	}

	if recognized == 0 {
		return &domain.ValidationError{Message: "Request body must have a 'name'"}
	}

	if err := s.folderRepo.Update(ctx, current.ID, &merged); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Message: folderNotFoundMessage}
		}
		return err
	}

	s.logger.Info("folder updated", "id", current.ID)
	return nil
}

// DeleteFolder removes a folder by id
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	if err := s.folderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Message: folderNotFoundMessage}
		}
		return err
	}

	s.logger.Info("folder deleted", "id", id)
	return nil
}
