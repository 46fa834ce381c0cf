package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/repository"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an activity entry and advances the owning project's
// last-activity timestamp in the same transaction
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	metadata, err := marshalJSON(entry.Metadata)
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO project_activities (project_id, type, description, actor, actor_name,
			asset_id, asset_type, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, insert,
		entry.ProjectID,
		entry.Type,
		nullString(entry.Description),
		nullString(entry.Actor),
		nullString(entry.ActorName),
		nullString(entry.AssetID),
		nullString(entry.AssetType),
		metadata,
		entry.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}
	entry.ID = id

	touch := `UPDATE projects SET last_activity = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, touch, entry.CreatedAt, entry.ProjectID); err != nil {
		return fmt.Errorf("failed to touch project activity: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List returns activity entries matching the filter, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	var conditions []string
	var args []any

	if opts.ProjectID != "" {
		conditions = append(conditions, "project_id = ?")
		args = append(args, opts.ProjectID)
	}
	if opts.AssetID != "" {
		conditions = append(conditions, "asset_id = ?")
		args = append(args, opts.AssetID)
	}
	if opts.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, string(*opts.Type))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = activity.DefaultLimit
	}

	query := `
		SELECT id, project_id, type, description, actor, actor_name,
			asset_id, asset_type, metadata, created_at
		FROM project_activities` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		var description, actor, actorName, assetID, assetType, metadata sql.NullString
		err := rows.Scan(
			&entry.ID,
			&entry.ProjectID,
			&entry.Type,
			&description,
			&actor,
			&actorName,
			&assetID,
			&assetType,
			&metadata,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.Description = description.String
		entry.Actor = actor.String
		entry.ActorName = actorName.String
		entry.AssetID = assetID.String
		entry.AssetType = assetType.String
		if err := unmarshalJSON(metadata, &entry.Metadata); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
