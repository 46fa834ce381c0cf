package project

import "time"

// Status marks a project's lifecycle state. Archiving is a flag, not a
// delete; hard deletion is a separate explicit operation.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// AccessLevel controls discoverability of a project. Enforcement is the
// responsibility of the calling application, not this core.
type AccessLevel string

const (
	AccessPrivate      AccessLevel = "private"
	AccessTeam         AccessLevel = "team"
	AccessOrganization AccessLevel = "organization"
	AccessPublic       AccessLevel = "public"
)

// Valid reports whether the access level is one of the known values.
func (a AccessLevel) Valid() bool {
	switch a {
	case AccessPrivate, AccessTeam, AccessOrganization, AccessPublic:
		return true
	}
	return false
}

// Settings holds per-project behavior toggles.
type Settings struct {
	AutoSaveSearches        bool `json:"auto_save_searches"`
	AutoCreateAssets        bool `json:"auto_create_assets"`
	AllowCrossProjectAssets bool `json:"allow_cross_project_assets"`
	EmailNotifications      bool `json:"email_notifications"`
	ActivityDigest          bool `json:"activity_digest"`
}

// DefaultSettings returns the settings applied when a project is created
// without explicit settings.
func DefaultSettings() Settings {
	return Settings{
		AutoSaveSearches:        true,
		AutoCreateAssets:        true,
		AllowCrossProjectAssets: true,
		EmailNotifications:      true,
		ActivityDigest:          false,
	}
}

// Project is a named, owned research workspace.
type Project struct {
	ID            string         `json:"id"`
	OwnerID       string         `json:"owner_id"`
	OwnerName     string         `json:"owner_name,omitempty"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description,omitempty"`
	Color         string         `json:"color,omitempty"`
	Priority      string         `json:"priority,omitempty"`
	Status        Status         `json:"status"`
	AccessLevel   AccessLevel    `json:"access_level"`
	Tags          []string       `json:"tags,omitempty"`
	Settings      Settings       `json:"settings"`
	AssetCount    int            `json:"asset_count"`
	Collaborators []Collaborator `json:"collaborators,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	LastActivity  time.Time      `json:"last_activity"`
}

// Archived reports whether the project has been archived.
func (p *Project) Archived() bool {
	return p.Status == StatusArchived
}
