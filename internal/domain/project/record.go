package project

import "time"

// Record is the persistence-oriented project shape used by older store
// APIs, where access control is a single is_public flag and most fields are
// optional. Conversion to and from the canonical Project is total: missing
// fields degrade to defaults rather than failing.
type Record struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	OwnerName    string     `json:"owner_name,omitempty"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug,omitempty"`
	Description  string     `json:"description,omitempty"`
	Color        string     `json:"color,omitempty"`
	Priority     string     `json:"priority,omitempty"`
	Status       string     `json:"status,omitempty"`
	IsPublic     bool       `json:"is_public"`
	Tags         []string   `json:"tags,omitempty"`
	Settings     *Settings  `json:"settings,omitempty"`
	AssetCount   int        `json:"asset_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// FromRecord converts a persistence record into the canonical Project.
// The is_public flag maps to AccessPublic or AccessPrivate, absent settings
// become DefaultSettings, a missing slug is re-derived from the name, and a
// missing status defaults to active.
func FromRecord(rec Record) Project {
	p := Project{
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		OwnerName:   rec.OwnerName,
		Name:        rec.Name,
		Slug:        rec.Slug,
		Description: rec.Description,
		Color:       rec.Color,
		Priority:    rec.Priority,
		Status:      Status(rec.Status),
		AccessLevel: AccessPrivate,
		Tags:        rec.Tags,
		Settings:    DefaultSettings(),
		AssetCount:  rec.AssetCount,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.IsPublic {
		p.AccessLevel = AccessPublic
	}
	if p.Slug == "" {
		p.Slug = Slugify(rec.Name)
	}
	if p.Status != StatusActive && p.Status != StatusArchived {
		p.Status = StatusActive
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if rec.Settings != nil {
		p.Settings = *rec.Settings
	}
	if rec.LastActivity != nil {
		p.LastActivity = *rec.LastActivity
	} else {
		p.LastActivity = rec.UpdatedAt
	}
	return p
}

// ToRecord converts a canonical Project into the persistence record shape.
// Every access level other than public collapses to is_public = false.
func ToRecord(p Project) Record {
	last := p.LastActivity
	return Record{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		OwnerName:    p.OwnerName,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Color:        p.Color,
		Priority:     p.Priority,
		Status:       string(p.Status),
		IsPublic:     p.AccessLevel == AccessPublic,
		Tags:         p.Tags,
		Settings:     &p.Settings,
		AssetCount:   p.AssetCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		LastActivity: &last,
	}
}
