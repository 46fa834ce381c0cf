package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aiborg-ai/patentdesk/internal/domain/template"
	"github.com/aiborg-ai/patentdesk/internal/repository"
)

// TemplateRepository implements template.Repository for SQLite
type TemplateRepository struct {
	db *DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Get retrieves a template by ID
func (r *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	query := templateSelect + ` WHERE id = ?`

	tmpl, err := scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return tmpl, nil
}

// List returns all templates ordered by name
func (r *TemplateRepository) List(ctx context.Context) ([]template.Template, error) {
	query := templateSelect + ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, *tmpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}

	return templates, nil
}

// IncrementUsage bumps the template's usage counter
func (r *TemplateRepository) IncrementUsage(ctx context.Context, id string) error {
	query := `UPDATE project_templates SET usage_count = usage_count + 1 WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment template usage: %w", err)
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

// Seed inserts templates that don't already exist. Existing rows keep
// their usage counters.
func (r *TemplateRepository) Seed(ctx context.Context, templates []template.Template) error {
	query := `
		INSERT OR IGNORE INTO project_templates (id, name, category, description,
			default_settings, recommended_tags, default_priority, suggested_milestones,
			usage_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, tmpl := range templates {
		settings, err := marshalJSON(&tmpl.DefaultSettings)
		if err != nil {
			return err
		}
		tags, err := marshalJSON(tmpl.RecommendedTags)
		if err != nil {
			return err
		}
		milestones, err := marshalJSON(tmpl.SuggestedMilestones)
		if err != nil {
			return err
		}

		_, err = r.db.ExecContext(ctx, query,
			tmpl.ID,
			tmpl.Name,
			nullString(tmpl.Category),
			nullString(tmpl.Description),
			settings,
			tags,
			nullString(tmpl.DefaultPriority),
			milestones,
			tmpl.UsageCount,
			tmpl.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed template %q: %w", tmpl.Name, err)
		}
	}

	return nil
}

const templateSelect = `
	SELECT id, name, category, description, default_settings, recommended_tags,
		default_priority, suggested_milestones, usage_count, created_at
	FROM project_templates`

func scanTemplate(row rowScanner) (*template.Template, error) {
	var tmpl template.Template
	var category, description, settings, tags, priority, milestones sql.NullString

	err := row.Scan(
		&tmpl.ID,
		&tmpl.Name,
		&category,
		&description,
		&settings,
		&tags,
		&priority,
		&milestones,
		&tmpl.UsageCount,
		&tmpl.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tmpl.Category = category.String
	tmpl.Description = description.String
	tmpl.DefaultPriority = priority.String
	if err := unmarshalJSON(settings, &tmpl.DefaultSettings); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(tags, &tmpl.RecommendedTags); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(milestones, &tmpl.SuggestedMilestones); err != nil {
		return nil, err
	}

	return &tmpl, nil
}
