package activity_test

import (
	"context"
	"testing"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogValidation(t *testing.T) {
	ctx := context.Background()
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)

	err := svc.Log(ctx, nil)
	require.ErrorIs(t, err, activity.ErrInvalidInput)

	err = svc.Log(ctx, &activity.Entry{Type: activity.TypeAssetAdded})
	require.ErrorIs(t, err, activity.ErrInvalidInput)

	err = svc.Log(ctx, &activity.Entry{ProjectID: "p1", Type: "bogus"})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}

func TestActivityService_LogStampsTime(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.Anything).Return(nil)

	svc := activity.NewService(repo, nil)
	entry := &activity.Entry{ProjectID: "p1", Type: activity.TypeSearchPerformed}
	require.NoError(t, svc.Log(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())
}

func TestActivityService_RecentDefaultLimit(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("List", ctx, activity.ListOptions{ProjectID: "p1", Limit: activity.DefaultLimit}).
		Return([]activity.Entry{}, nil)

	svc := activity.NewService(repo, nil)
	_, err := svc.Recent(ctx, "p1", 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
