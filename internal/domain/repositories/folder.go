package repositories

import (
	"context"

	"noteful/internal/domain/models"
)

// FolderRepository translates folder CRUD intents into relational operations.
type FolderRepository interface {
	// List returns all folders ordered by id. An empty store yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]models.Folder, error)

	// GetByID retrieves a folder by id. Returns domain.ErrNotFound on a miss.
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// Insert stores a new folder and returns the row as persisted.
	Insert(ctx context.Context, folder *models.Folder) (*models.Folder, error)

	// Update overwrites the stored folder identified by id.
	Update(ctx context.Context, id string, folder *models.Folder) error

	// Delete removes the folder identified by id.
	Delete(ctx context.Context, id string) error
}
