package repositories

import (
	"context"

	"noteful/internal/domain/models"
)

// NoteRepository translates note CRUD intents into relational operations.
type NoteRepository interface {
	List(ctx context.Context) ([]models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	Insert(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, id string, note *models.Note) error
	Delete(ctx context.Context, id string) error
}
