package activity

import "time"

// Type represents the kind of audit event.
type Type string

const (
	TypeProjectCreated       Type = "project_created"
	TypeAssetAdded           Type = "asset_added"
	TypeAssetRemoved         Type = "asset_removed"
	TypeSearchPerformed      Type = "search_performed"
	TypeDashboardCreated     Type = "dashboard_created"
	TypeReportGenerated      Type = "report_generated"
	TypeCollaborationInvited Type = "collaboration_invited"
	TypeAssetShared          Type = "asset_shared"
	TypeSettingsChanged      Type = "project_settings_changed"
)

// Valid reports whether the type is one of the known values.
func (t Type) Valid() bool {
	switch t {
	case TypeProjectCreated, TypeAssetAdded, TypeAssetRemoved,
		TypeSearchPerformed, TypeDashboardCreated, TypeReportGenerated,
		TypeCollaborationInvited, TypeAssetShared, TypeSettingsChanged:
		return true
	}
	return false
}

// Entry is an append-only audit log record. Entries are never mutated or
// deleted once written; a project's last-activity timestamp is derived from
// them.
type Entry struct {
	ID          int64             `json:"id"`
	ProjectID   string            `json:"project_id"`
	Type        Type              `json:"type"`
	Description string            `json:"description"`
	Actor       string            `json:"actor"`
	ActorName   string            `json:"actor_name,omitempty"`
	AssetID     string            `json:"asset_id,omitempty"`
	AssetType   string            `json:"asset_type,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
