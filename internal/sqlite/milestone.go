package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/repository"
)

// MilestoneRepository implements milestone.Repository for SQLite
type MilestoneRepository struct {
	db *DB
}

// NewMilestoneRepository creates a new MilestoneRepository
func NewMilestoneRepository(db *DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// Create creates a new milestone
func (r *MilestoneRepository) Create(ctx context.Context, m *milestone.Milestone) error {
	query := `
		INSERT INTO project_milestones (id, project_id, title, description, due_date,
			status, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.Title,
		nullString(m.Description),
		nullTime(&m.DueDate),
		m.Status,
		m.SortOrder,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if err != nil {
		return fmt.Errorf("failed to create milestone: %w", err)
	}

	return nil
}

// Get retrieves a milestone by ID
func (r *MilestoneRepository) Get(ctx context.Context, id string) (*milestone.Milestone, error) {
	query := `
		SELECT id, project_id, title, description, due_date, status, sort_order, created_at, updated_at
		FROM project_milestones
		WHERE id = ?
	`

	m, err := scanMilestone(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}

	return m, nil
}

// Update persists all mutable milestone fields
func (r *MilestoneRepository) Update(ctx context.Context, m *milestone.Milestone) error {
	query := `
		UPDATE project_milestones
		SET title = ?, description = ?, due_date = ?, status = ?, sort_order = ?, updated_at = ?
		WHERE project_id = ? AND id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		m.Title,
		nullString(m.Description),
		nullTime(&m.DueDate),
		m.Status,
		m.SortOrder,
		m.UpdatedAt,
		m.ProjectID,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
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

// ListByProject returns a project's milestones ordered by sort order
func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]milestone.Milestone, error) {
	query := `
		SELECT id, project_id, title, description, due_date, status, sort_order, created_at, updated_at
		FROM project_milestones
		WHERE project_id = ?
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []milestone.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, *m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestone rows: %w", err)
	}

	return milestones, nil
}

func scanMilestone(row rowScanner) (*milestone.Milestone, error) {
	var m milestone.Milestone
	var description sql.NullString
	var dueDate sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.Title,
		&description,
		&dueDate,
		&m.Status,
		&m.SortOrder,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Description = description.String
	if dueDate.Valid {
		m.DueDate = dueDate.Time
	}

	return &m, nil
}
