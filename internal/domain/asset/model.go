package asset

import "time"

// Type is the fixed set of research asset kinds.
type Type string

const (
	TypeSearchQuery    Type = "search-query"
	TypeDataset        Type = "dataset"
	TypeDashboard      Type = "dashboard"
	TypeReport         Type = "report"
	TypeCollection     Type = "collection"
	TypeClaimedWork    Type = "claimed-work"
	TypeNetworkContact Type = "network-contact"
)

// Valid reports whether the type is one of the known values.
func (t Type) Valid() bool {
	switch t {
	case TypeSearchQuery, TypeDataset, TypeDashboard, TypeReport,
		TypeCollection, TypeClaimedWork, TypeNetworkContact:
		return true
	}
	return false
}

// ProjectAsset is a unit of research output attached to a project. Metadata
// is a verbatim key-value bag; the core stores and returns it without
// interpretation.
type ProjectAsset struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	Type        Type              `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	CreatedBy   string            `json:"created_by"`
	Active      bool              `json:"active"`
	SharedFrom  string            `json:"shared_from,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Shared reports whether the asset is a reference shared from another
// project. A shared asset always carries the source project id.
func (a *ProjectAsset) Shared() bool {
	return a.SharedFrom != ""
}
