package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"noteful/internal/domain"
	"noteful/internal/domain/models"
	"noteful/internal/domain/repositories"
)

// PostgresNoteRepository implements the NoteRepository interface
type PostgresNoteRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(config *RepositoryConfig) repositories.NoteRepository {
	return &PostgresNoteRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List returns all notes ordered by id
func (r *PostgresNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	query := fmt.Sprintf(`
		SELECT id, name, modified, folder_id, content
		FROM %s
		ORDER BY id ASC
	`, r.tables.Notes)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.Name,
			&note.Modified,
			&note.FolderID,
			&note.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

// GetByID retrieves a note by ID
func (r *PostgresNoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query := fmt.Sprintf(`
		SELECT id, name, modified, folder_id, content
		FROM %s
		WHERE id = $1
	`, r.tables.Notes)

	var note models.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.Name,
		&note.Modified,
		&note.FolderID,
		&note.Content,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get note: %w", err)
	}

	return &note, nil
}

// Insert stores a new note and returns the row exactly as persisted
func (r *PostgresNoteRepository) Insert(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, modified, folder_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, modified, folder_id, content
	`, r.tables.Notes)

	var stored models.Note
	err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Name,
		note.Modified,
		note.FolderID,
		note.Content,
	).Scan(
		&stored.ID,
		&stored.Name,
		&stored.Modified,
		&stored.FolderID,
		&stored.Content,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return nil, fmt.Errorf("note %s: %w", note.ID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("insert note: %w", err)
	}

	return &stored, nil
}

// Update overwrites the stored note identified by id
func (r *PostgresNoteRepository) Update(ctx context.Context, id string, note *models.Note) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, modified = $2, folder_id = $3, content = $4
		WHERE id = $5
	`, r.tables.Notes)

	result, err := r.pool.Exec(ctx, query,
		note.Name,
		note.Modified,
		note.FolderID,
		note.Content,
		id,
	)

	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the note identified by id
func (r *PostgresNoteRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Notes)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
