package project_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/auth"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/repository"
	"github.com/aiborg-ai/patentdesk/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testIdentity() auth.Provider {
	return &auth.Static{Identity: auth.Identity{UserID: "u1", DisplayName: "Ada"}}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	proj, err := svc.Create(ctx, project.CreateRequest{Name: "  AI Patents!! "})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "AI Patents!!", proj.Name)
	require.Equal(t, "ai-patents", proj.Slug)
	require.Equal(t, "u1", proj.OwnerID)
	require.Equal(t, project.StatusActive, proj.Status)
	require.Equal(t, project.AccessPrivate, proj.AccessLevel)
	require.Equal(t, project.DefaultSettings(), proj.Settings)
	repo.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	svc := project.NewService(&mocks.ProjectRepository{}, nil, testIdentity(), nil)

	_, err := svc.Create(ctx, project.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.CreateRequest{Name: "x", AccessLevel: "secret"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_CreateUnauthenticated(t *testing.T) {
	ctx := context.Background()

	svc := project.NewService(&mocks.ProjectRepository{}, nil, auth.NewChain(), nil)
	_, err := svc.Create(ctx, project.CreateRequest{Name: "x"})
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_GetEmbedsCollaborators(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1", OwnerID: "u1"}, nil)
	repo.On("ListCollaborators", ctx, "p1").Return([]project.Collaborator{
		{ProjectID: "p1", UserID: "u1", Role: project.RoleOwner},
		{ProjectID: "p1", UserID: "u2", Role: project.RoleViewer},
	}, nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	proj, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, proj.Collaborators, 2)
	require.Equal(t, project.RoleOwner, proj.Collaborators[0].Role)
}

func TestProjectService_GetCollaboratorLoadFailure(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1"}, nil)
	repo.On("ListCollaborators", ctx, "p1").Return(nil, errors.New("disk full"))

	svc := project.NewService(repo, nil, testIdentity(), nil)
	_, err := svc.Get(ctx, "p1")
	require.Error(t, err)
}

func TestProjectService_ListIncludeCollaborators(t *testing.T) {
	ctx := context.Background()
	stale := time.Now().Add(-60 * 24 * time.Hour)

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx, mock.Anything).Return([]project.Project{
		{ID: "p1", OwnerID: "other", UpdatedAt: stale},
		{ID: "p2", OwnerID: "other", UpdatedAt: stale},
	}, 2, nil)
	repo.On("ListCollaborators", ctx, "p1").Return([]project.Collaborator{
		{ProjectID: "p1", UserID: "other", Role: project.RoleOwner},
		{ProjectID: "p1", UserID: "u1", Role: project.RoleViewer},
	}, nil)
	repo.On("ListCollaborators", ctx, "p2").Return([]project.Collaborator{
		{ProjectID: "p2", UserID: "other", Role: project.RoleOwner},
	}, nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	page, err := svc.List(ctx, project.ListOptions{IncludeCollaborators: true})
	require.NoError(t, err)

	// Listed data carries enough to place collaborations in Shared.
	buckets := project.Categorize(page.Projects, "u1", time.Now())
	require.Len(t, buckets.Shared, 1)
	require.Equal(t, "p1", buckets.Shared[0].ID)
	require.Len(t, buckets.Other, 1)
}

func TestProjectService_ListPagination(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx, mock.MatchedBy(func(opts project.ListOptions) bool {
		return opts.Page == 1 && opts.PerPage == project.DefaultPerPage && opts.SortBy == project.SortUpdatedAt
	})).Return([]project.Project{{ID: "p1"}}, 45, nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	page, err := svc.List(ctx, project.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, 45, page.Total)
	require.Equal(t, 1, page.Page)
	require.Equal(t, project.DefaultPerPage, page.PerPage)
	require.Equal(t, 3, page.TotalPages)
}

func TestProjectService_ListEmptyPage(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx, mock.Anything).Return(nil, 0, nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	page, err := svc.List(ctx, project.ListOptions{Page: 99})
	require.NoError(t, err)
	require.NotNil(t, page.Projects)
	require.Empty(t, page.Projects)
	require.Equal(t, 0, page.TotalPages)
}

func TestProjectService_UpdateRegeneratesSlug(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{
		ID: "p1", OwnerID: "u1", Name: "Old", Slug: "old",
		Status: project.StatusActive, Settings: project.DefaultSettings(),
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	name := "New Name"
	proj, err := svc.Update(ctx, "p1", project.UpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "New Name", proj.Name)
	require.Equal(t, "new-name", proj.Slug)
}

func TestProjectService_ArchiveIdempotent(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{
		ID: "p1", Status: project.StatusArchived,
	}, nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	proj, err := svc.Archive(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, project.StatusArchived, proj.Status)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectService_AddCollaboratorRejectsOwnerRole(t *testing.T) {
	ctx := context.Background()

	svc := project.NewService(&mocks.ProjectRepository{}, nil, testIdentity(), nil)
	_, err := svc.AddCollaborator(ctx, "p1", "u2", "Grace", project.RoleOwner)
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_OwnerRoleImmutable(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1", OwnerID: "u1"}, nil)

	svc := project.NewService(repo, nil, testIdentity(), nil)

	err := svc.UpdateCollaboratorRole(ctx, "p1", "u1", project.RoleViewer)
	require.ErrorIs(t, err, project.ErrOwnerImmutable)

	err = svc.RemoveCollaborator(ctx, "p1", "u1")
	require.ErrorIs(t, err, project.ErrOwnerImmutable)
}

func TestProjectService_RemoveCollaboratorNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "p1").Return(&project.Project{ID: "p1", OwnerID: "u1"}, nil)
	repo.On("RemoveCollaborator", ctx, "p1", "u2").Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil, testIdentity(), nil)
	err := svc.RemoveCollaborator(ctx, "p1", "u2")
	require.ErrorIs(t, err, project.ErrCollaboratorNotFound)
}

func TestRolePermissions(t *testing.T) {
	require.True(t, project.RoleOwner.Permissions().CanDelete)
	require.True(t, project.RoleAdmin.Permissions().CanInvite)
	require.False(t, project.RoleAdmin.Permissions().CanDelete)
	require.True(t, project.RoleContributor.Permissions().CanEdit)
	require.False(t, project.RoleContributor.Permissions().CanInvite)
	require.Equal(t, project.Permissions{}, project.RoleViewer.Permissions())
}
