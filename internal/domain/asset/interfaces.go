package asset

import (
	"context"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
)

// Repository provides persistence for project assets.
type Repository interface {
	Create(ctx context.Context, a *ProjectAsset) error
	Get(ctx context.Context, projectID, id string) (*ProjectAsset, error)
	ListActive(ctx context.Context, projectID string) ([]ProjectAsset, error)
	Deactivate(ctx context.Context, projectID, id string) error
}

// ProjectStore provides the project lookups and counters asset operations
// need.
type ProjectStore interface {
	Get(ctx context.Context, id string) (*project.Project, error)
	AdjustAssetCount(ctx context.Context, projectID string, delta int) error
}

// ActivityLog records audit entries for asset mutations.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
