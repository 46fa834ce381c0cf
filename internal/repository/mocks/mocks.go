package mocks

import (
	"context"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/domain/template"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository and asset.ProjectStore.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, opts project.ListOptions) ([]project.Project, int, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) AdjustAssetCount(ctx context.Context, projectID string, delta int) error {
	args := m.Called(ctx, projectID, delta)
	return args.Error(0)
}

func (m *ProjectRepository) ListCollaborators(ctx context.Context, projectID string) ([]project.Collaborator, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]project.Collaborator); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) AddCollaborator(ctx context.Context, collab *project.Collaborator) error {
	args := m.Called(ctx, collab)
	return args.Error(0)
}

func (m *ProjectRepository) UpdateCollaboratorRole(ctx context.Context, projectID, userID string, role project.Role) error {
	args := m.Called(ctx, projectID, userID, role)
	return args.Error(0)
}

func (m *ProjectRepository) RemoveCollaborator(ctx context.Context, projectID, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

// AssetRepository is a mock for asset.Repository.
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) Create(ctx context.Context, a *asset.ProjectAsset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssetRepository) Get(ctx context.Context, projectID, id string) (*asset.ProjectAsset, error) {
	args := m.Called(ctx, projectID, id)
	if a, ok := args.Get(0).(*asset.ProjectAsset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) ListActive(ctx context.Context, projectID string) ([]asset.ProjectAsset, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]asset.ProjectAsset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) Deactivate(ctx context.Context, projectID, id string) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MilestoneRepository is a mock for milestone.Repository.
type MilestoneRepository struct {
	mock.Mock
}

func (m *MilestoneRepository) Create(ctx context.Context, ms *milestone.Milestone) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MilestoneRepository) Get(ctx context.Context, id string) (*milestone.Milestone, error) {
	args := m.Called(ctx, id)
	if ms, ok := args.Get(0).(*milestone.Milestone); ok {
		return ms, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MilestoneRepository) Update(ctx context.Context, ms *milestone.Milestone) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]milestone.Milestone, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]milestone.Milestone); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TemplateRepository is a mock for template.Repository.
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	args := m.Called(ctx, id)
	if tmpl, ok := args.Get(0).(*template.Template); ok {
		return tmpl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) List(ctx context.Context) ([]template.Template, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]template.Template); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TemplateRepository) IncrementUsage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TemplateRepository) Seed(ctx context.Context, templates []template.Template) error {
	args := m.Called(ctx, templates)
	return args.Error(0)
}
