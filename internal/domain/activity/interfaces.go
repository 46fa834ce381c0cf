package activity

import "context"

// Repository provides persistence for activity entries. Appending an entry
// also advances the owning project's last-activity timestamp.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
}
