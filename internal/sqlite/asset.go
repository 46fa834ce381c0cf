package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/repository"
)

// AssetRepository implements asset.Repository for SQLite
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new project asset
func (r *AssetRepository) Create(ctx context.Context, a *asset.ProjectAsset) error {
	metadata, err := marshalJSON(a.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO project_assets (id, project_id, type, name, description, created_by,
			is_active, shared_from, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.Type,
		a.Name,
		nullString(a.Description),
		nullString(a.CreatedBy),
		a.Active,
		nullString(a.SharedFrom),
		metadata,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Get retrieves an asset by ID within a project
func (r *AssetRepository) Get(ctx context.Context, projectID, id string) (*asset.ProjectAsset, error) {
	query := `
		SELECT id, project_id, type, name, description, created_by,
			is_active, shared_from, metadata, created_at, updated_at
		FROM project_assets
		WHERE project_id = ? AND id = ?
	`

	a, err := scanAsset(r.db.QueryRowContext(ctx, query, projectID, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return a, nil
}

// ListActive returns a project's active assets, newest first
func (r *AssetRepository) ListActive(ctx context.Context, projectID string) ([]asset.ProjectAsset, error) {
	query := `
		SELECT id, project_id, type, name, description, created_by,
			is_active, shared_from, metadata, created_at, updated_at
		FROM project_assets
		WHERE project_id = ? AND is_active = 1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.ProjectAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}

	return assets, nil
}

// Deactivate soft-deletes an asset
func (r *AssetRepository) Deactivate(ctx context.Context, projectID, id string) error {
	query := `
		UPDATE project_assets
		SET is_active = 0, updated_at = ?
		WHERE project_id = ? AND id = ? AND is_active = 1
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), projectID, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanAsset(row rowScanner) (*asset.ProjectAsset, error) {
	var a asset.ProjectAsset
	var description, createdBy, sharedFrom, metadata sql.NullString

	err := row.Scan(
		&a.ID,
		&a.ProjectID,
		&a.Type,
		&a.Name,
		&description,
		&createdBy,
		&a.Active,
		&sharedFrom,
		&metadata,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Description = description.String
	a.CreatedBy = createdBy.String
	a.SharedFrom = sharedFrom.String
	if err := unmarshalJSON(metadata, &a.Metadata); err != nil {
		return nil, err
	}

	return &a, nil
}
