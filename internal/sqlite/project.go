package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, owner_id, owner_name, name, slug, description, color, priority,
	status, is_public, tags, settings, asset_count, created_at, updated_at, last_activity`

// Create creates a new project and the owner's collaborator row in the
// same transaction
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rec := project.ToRecord(*proj)
	tags, err := marshalJSON(rec.Tags)
	if err != nil {
		return err
	}
	settings, err := marshalJSON(rec.Settings)
	if err != nil {
		return err
	}

	insertProject := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, insertProject,
		rec.ID,
		rec.OwnerID,
		nullString(rec.OwnerName),
		rec.Name,
		rec.Slug,
		nullString(rec.Description),
		nullString(rec.Color),
		nullString(rec.Priority),
		rec.Status,
		rec.IsPublic,
		tags,
		settings,
		rec.AssetCount,
		rec.CreatedAt,
		rec.UpdatedAt,
		nullTime(rec.LastActivity),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	insertOwner := `
		INSERT INTO project_collaborators (project_id, user_id, user_name, role, added_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, insertOwner,
		proj.ID,
		proj.OwnerID,
		nullString(proj.OwnerName),
		project.RoleOwner,
		proj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create owner collaborator: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// List returns one page of projects matching the filter, along with the
// total number of matches
func (r *ProjectRepository) List(ctx context.Context, opts project.ListOptions) ([]project.Project, int, error) {
	var conditions []string
	var args []any

	if opts.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opts.Status))
	}
	if opts.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, opts.OwnerID)
	}
	if opts.IsPublic != nil {
		conditions = append(conditions, "is_public = ?")
		args = append(args, *opts.IsPublic)
	}
	if opts.Search != "" {
		conditions = append(conditions, "(name LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE)")
		pattern := "%" + opts.Search + "%"
		args = append(args, pattern, pattern)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM projects" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	// Whitelist the sort column; anything else falls back to updated_at
	sortColumn := "updated_at"
	switch opts.SortBy {
	case project.SortName, project.SortCreatedAt, project.SortUpdatedAt,
		project.SortLastActivity, project.SortAssetCount:
		sortColumn = opts.SortBy
	}
	direction := "DESC"
	if opts.SortAscending {
		direction = "ASC"
	}

	query := `SELECT ` + projectColumns + ` FROM projects` + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT ? OFFSET ?", sortColumn, direction)
	args = append(args, opts.PerPage, (opts.Page-1)*opts.PerPage)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, total, nil
}

// Update persists all mutable project fields
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	rec := project.ToRecord(*proj)
	tags, err := marshalJSON(rec.Tags)
	if err != nil {
		return err
	}
	settings, err := marshalJSON(rec.Settings)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET name = ?, slug = ?, description = ?, color = ?, priority = ?,
			status = ?, is_public = ?, tags = ?, settings = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.Name,
		rec.Slug,
		nullString(rec.Description),
		nullString(rec.Color),
		nullString(rec.Priority),
		rec.Status,
		rec.IsPublic,
		tags,
		settings,
		rec.UpdatedAt,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

// Delete removes a project. Assets in other projects that were shared
// from it are deactivated in the same transaction; the project's own
// rows cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deactivate := `
		UPDATE project_assets
		SET is_active = 0, updated_at = ?
		WHERE shared_from = ?
	`
	if _, err := tx.ExecContext(ctx, deactivate, time.Now(), id); err != nil {
		return fmt.Errorf("failed to deactivate shared assets: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AdjustAssetCount shifts the project's asset counter by delta, clamped
// at zero
func (r *ProjectRepository) AdjustAssetCount(ctx context.Context, projectID string, delta int) error {
	query := `
		UPDATE projects
		SET asset_count = MAX(asset_count + ?, 0)
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, delta, projectID)
	if err != nil {
		return fmt.Errorf("failed to adjust asset count: %w", err)
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

// ListCollaborators returns all collaborators on a project, owner first
func (r *ProjectRepository) ListCollaborators(ctx context.Context, projectID string) ([]project.Collaborator, error) {
	query := `
		SELECT project_id, user_id, user_name, role, added_at
		FROM project_collaborators
		WHERE project_id = ?
		ORDER BY CASE role WHEN 'owner' THEN 0 ELSE 1 END, added_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var collaborators []project.Collaborator
	for rows.Next() {
		var collab project.Collaborator
		var userName sql.NullString
		err := rows.Scan(
			&collab.ProjectID,
			&collab.UserID,
			&userName,
			&collab.Role,
			&collab.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		collab.UserName = userName.String
		collaborators = append(collaborators, collab)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collaborator rows: %w", err)
	}

	return collaborators, nil
}

// AddCollaborator adds a collaborator to a project
func (r *ProjectRepository) AddCollaborator(ctx context.Context, collab *project.Collaborator) error {
	query := `
		INSERT INTO project_collaborators (project_id, user_id, user_name, role, added_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		collab.ProjectID,
		collab.UserID,
		nullString(collab.UserName),
		collab.Role,
		collab.AddedAt,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if isUniqueViolation(err) {
		return repository.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to add collaborator: %w", err)
	}

	return nil
}

// UpdateCollaboratorRole changes an existing collaborator's role
func (r *ProjectRepository) UpdateCollaboratorRole(ctx context.Context, projectID, userID string, role project.Role) error {
	query := `
		UPDATE project_collaborators
		SET role = ?
		WHERE project_id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, role, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to update collaborator role: %w", err)
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

// RemoveCollaborator removes a collaborator from a project
func (r *ProjectRepository) RemoveCollaborator(ctx context.Context, projectID, userID string) error {
	query := `DELETE FROM project_collaborators WHERE project_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove collaborator: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var rec project.Record
	var ownerName, description, color, priority, tags, settings sql.NullString
	var lastActivity sql.NullTime

	err := row.Scan(
		&rec.ID,
		&rec.OwnerID,
		&ownerName,
		&rec.Name,
		&rec.Slug,
		&description,
		&color,
		&priority,
		&rec.Status,
		&rec.IsPublic,
		&tags,
		&settings,
		&rec.AssetCount,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&lastActivity,
	)
	if err != nil {
		return nil, err
	}

	rec.OwnerName = ownerName.String
	rec.Description = description.String
	rec.Color = color.String
	rec.Priority = priority.String
	if err := unmarshalJSON(tags, &rec.Tags); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(settings, &rec.Settings); err != nil {
		return nil, err
	}
	if lastActivity.Valid {
		rec.LastActivity = &lastActivity.Time
	}

	proj := project.FromRecord(rec)
	return &proj, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
