package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema if it does not already exist
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    owner_name TEXT,
    name TEXT NOT NULL,
    slug TEXT NOT NULL,
    description TEXT,
    color TEXT,
    priority TEXT,
    status TEXT NOT NULL CHECK(status IN ('active', 'archived')),
    is_public INTEGER NOT NULL DEFAULT 0,
    tags TEXT,
    settings TEXT,
    asset_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    last_activity TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_owner_projects ON projects(owner_id);
CREATE INDEX IF NOT EXISTS idx_project_status ON projects(status);

-- Project collaborators
CREATE TABLE IF NOT EXISTS project_collaborators (
    project_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    user_name TEXT,
    role TEXT NOT NULL CHECK(role IN ('owner', 'admin', 'contributor', 'viewer')),
    added_at TIMESTAMP NOT NULL,
    PRIMARY KEY (project_id, user_id),
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_collaborator_user ON project_collaborators(user_id);

-- Project assets. shared_from carries no foreign key so a source project
-- can be deleted; its shared copies are deactivated at delete time.
CREATE TABLE IF NOT EXISTS project_assets (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    type TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    created_by TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    shared_from TEXT,
    metadata TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_project_assets ON project_assets(project_id);
CREATE INDEX IF NOT EXISTS idx_asset_shared_from ON project_assets(shared_from);

-- Activity log
CREATE TABLE IF NOT EXISTS project_activities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id TEXT NOT NULL,
    type TEXT NOT NULL,
    description TEXT,
    actor TEXT,
    actor_name TEXT,
    asset_id TEXT,
    asset_type TEXT,
    metadata TEXT,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_project_activities ON project_activities(project_id);
CREATE INDEX IF NOT EXISTS idx_activity_created_at ON project_activities(created_at);

-- Project milestones
CREATE TABLE IF NOT EXISTS project_milestones (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    due_date TIMESTAMP,
    status TEXT NOT NULL CHECK(status IN ('pending', 'in_progress', 'completed')),
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_project_milestones ON project_milestones(project_id);

-- Project templates
CREATE TABLE IF NOT EXISTS project_templates (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT,
    description TEXT,
    default_settings TEXT,
    recommended_tags TEXT,
    default_priority TEXT,
    suggested_milestones TEXT,
    usage_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
