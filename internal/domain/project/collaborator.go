package project

import "time"

// Role is a named access grant on a project.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
	RoleViewer      Role = "viewer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleContributor, RoleViewer:
		return true
	}
	return false
}

// Permissions is the fixed capability tuple a role grants.
type Permissions struct {
	CanEdit         bool `json:"can_edit"`
	CanInvite       bool `json:"can_invite"`
	CanDelete       bool `json:"can_delete"`
	CanManageAssets bool `json:"can_manage_assets"`
}

// Permissions returns the capability tuple for the role. Unknown roles get
// no permissions.
func (r Role) Permissions() Permissions {
	switch r {
	case RoleOwner:
		return Permissions{CanEdit: true, CanInvite: true, CanDelete: true, CanManageAssets: true}
	case RoleAdmin:
		return Permissions{CanEdit: true, CanInvite: true, CanManageAssets: true}
	case RoleContributor:
		return Permissions{CanEdit: true, CanManageAssets: true}
	default:
		return Permissions{}
	}
}

// Collaborator is a user's access grant on a project. Every project has
// exactly one collaborator with RoleOwner, matching the project's OwnerID.
type Collaborator struct {
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Role      Role      `json:"role"`
	AddedAt   time.Time `json:"added_at"`
}
