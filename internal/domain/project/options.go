package project

// DefaultPerPage is the page size used when the caller does not specify
// one.
const DefaultPerPage = 20

// Sortable fields for project listings. SortUpdatedAt descending is the
// default.
const (
	SortName         = "name"
	SortCreatedAt    = "created_at"
	SortUpdatedAt    = "updated_at"
	SortLastActivity = "last_activity"
	SortAssetCount   = "asset_count"
)

// ListOptions provides filtering, sorting, and pagination for project
// listings. Pages are 1-indexed. IncludeCollaborators embeds each
// project's collaborator grants, which categorization needs to place
// projects in the Shared bucket; the store ignores it.
type ListOptions struct {
	Status   Status
	OwnerID  string
	IsPublic *bool
	Search   string

	IncludeCollaborators bool

	SortBy        string
	SortAscending bool

	Page    int
	PerPage int
}

// Page is one page of a project listing together with pagination totals.
type Page struct {
	Projects   []Project `json:"projects"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}
