package project

import (
	"context"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
)

// Repository provides persistence for projects and their collaborator
// grants. Create inserts the owner's collaborator row in the same
// transaction so the one-owner invariant holds from the first write.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, opts ListOptions) ([]Project, int, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
	ListCollaborators(ctx context.Context, projectID string) ([]Collaborator, error)
	AddCollaborator(ctx context.Context, collab *Collaborator) error
	UpdateCollaboratorRole(ctx context.Context, projectID, userID string, role Role) error
	RemoveCollaborator(ctx context.Context, projectID, userID string) error
}

// ActivityLog records audit entries for project mutations.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
