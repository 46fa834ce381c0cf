package activity

// DefaultLimit bounds activity listings when the caller does not ask for a
// specific page size.
const DefaultLimit = 50

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	ProjectID string
	AssetID   string
	Type      *Type
	Limit     int
	Offset    int
}
