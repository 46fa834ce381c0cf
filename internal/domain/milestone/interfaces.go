package milestone

import "context"

// Repository provides persistence for milestones. ListByProject orders by
// sort order ascending.
type Repository interface {
	Create(ctx context.Context, m *Milestone) error
	Get(ctx context.Context, id string) (*Milestone, error)
	Update(ctx context.Context, m *Milestone) error
	ListByProject(ctx context.Context, projectID string) ([]Milestone, error)
}
