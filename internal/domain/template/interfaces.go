package template

import (
	"context"

	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
)

// Repository provides persistence for project templates.
type Repository interface {
	Get(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	IncrementUsage(ctx context.Context, id string) error
}

// ProjectCreator creates projects on behalf of template instantiation.
type ProjectCreator interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

// MilestoneCreator attaches milestones to newly created projects.
type MilestoneCreator interface {
	Add(ctx context.Context, projectID string, req milestone.AddRequest) (*milestone.Milestone, error)
}
