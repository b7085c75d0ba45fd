package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"noteful/internal/domain"
	"noteful/internal/domain/models"
	"noteful/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List returns all folders ordered by id
func (r *PostgresFolderRepository) List(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name
		FROM %s
		ORDER BY id ASC
	`, r.tables.Folders)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, name
		FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query, id).Scan(&folder.ID, &folder.Name)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// Insert stores a new folder and returns the row exactly as persisted
func (r *PostgresFolderRepository) Insert(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name)
		VALUES ($1, $2)
		RETURNING id, name
	`, r.tables.Folders)

	var stored models.Folder
	err := r.pool.QueryRow(ctx, query, folder.ID, folder.Name).Scan(&stored.ID, &stored.Name)
	if err != nil {
		if isPgDuplicateError(err) {
			return nil, fmt.Errorf("folder %s: %w", folder.ID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("insert folder: %w", err)
	}

	return &stored, nil
}

// Update overwrites the stored folder identified by id
func (r *PostgresFolderRepository) Update(ctx context.Context, id string, folder *models.Folder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET id = $1, name = $2
		WHERE id = $3
	`, r.tables.Folders)

	result, err := r.pool.Exec(ctx, query, folder.ID, folder.Name, id)
	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrConflict)
		}
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the folder identified by id
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("folder %s is referenced by notes: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
