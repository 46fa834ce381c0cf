package milestone_test

import (
	"context"
	"testing"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/repository"
	"github.com/aiborg-ai/patentdesk/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMilestoneService_Add(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MilestoneRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := milestone.NewService(repo, nil)
	due := time.Now().Add(7 * 24 * time.Hour)
	m, err := svc.Add(ctx, "p1", milestone.AddRequest{Title: " Scope search ", DueDate: due, SortOrder: 2})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.Equal(t, "Scope search", m.Title)
	require.Equal(t, milestone.StatusPending, m.Status)
	require.Equal(t, 2, m.SortOrder)
}

func TestMilestoneService_AddValidation(t *testing.T) {
	ctx := context.Background()
	svc := milestone.NewService(&mocks.MilestoneRepository{}, nil)

	_, err := svc.Add(ctx, "", milestone.AddRequest{Title: "x"})
	require.ErrorIs(t, err, milestone.ErrInvalidInput)

	_, err = svc.Add(ctx, "p1", milestone.AddRequest{Title: "   "})
	require.ErrorIs(t, err, milestone.ErrInvalidInput)
}

func TestMilestoneService_Update(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MilestoneRepository{}
	repo.On("Get", ctx, "m1").Return(&milestone.Milestone{
		ID: "m1", ProjectID: "p1", Title: "Old", Status: milestone.StatusPending,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := milestone.NewService(repo, nil)
	status := milestone.StatusCompleted
	m, err := svc.Update(ctx, "m1", milestone.UpdateRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, milestone.StatusCompleted, m.Status)
	require.Equal(t, "Old", m.Title)
}

func TestMilestoneService_UpdateInvalidStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MilestoneRepository{}
	repo.On("Get", ctx, "m1").Return(&milestone.Milestone{ID: "m1"}, nil)

	svc := milestone.NewService(repo, nil)
	status := milestone.Status("done-ish")
	_, err := svc.Update(ctx, "m1", milestone.UpdateRequest{Status: &status})
	require.ErrorIs(t, err, milestone.ErrInvalidInput)
}

func TestMilestoneService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.MilestoneRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := milestone.NewService(repo, nil)
	_, err := svc.Update(ctx, "missing", milestone.UpdateRequest{})
	require.ErrorIs(t, err, milestone.ErrMilestoneNotFound)
}
