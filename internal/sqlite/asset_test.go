package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestAsset(projectID string) *asset.ProjectAsset {
	now := time.Now().UTC().Truncate(time.Second)
	return &asset.ProjectAsset{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Type:      asset.TypeDataset,
		Name:      "Families",
		CreatedBy: "u1",
		Active:    true,
		Metadata:  map[string]string{"record_count": "42"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAssetRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	repo := NewAssetRepository(db)

	proj := newTestProject("AI Patents", "u1")
	require.NoError(t, projects.Create(ctx, proj))

	a := newTestAsset(proj.ID)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.Get(ctx, proj.ID, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.Name, got.Name)
	require.Equal(t, asset.TypeDataset, got.Type)
	require.Equal(t, "42", got.Metadata["record_count"])
	require.True(t, got.Active)
	require.False(t, got.Shared())
}

func TestAssetRepository_CreateRequiresProject(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(NewTestDB(t))

	err := repo.Create(ctx, newTestAsset("missing"))
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestAssetRepository_ListActiveNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	repo := NewAssetRepository(db)

	proj := newTestProject("AI Patents", "u1")
	require.NoError(t, projects.Create(ctx, proj))

	older := newTestAsset(proj.ID)
	older.Name = "older"
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := newTestAsset(proj.ID)
	newer.Name = "newer"
	inactive := newTestAsset(proj.ID)
	inactive.Active = false
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, inactive))

	active, err := repo.ListActive(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "newer", active[0].Name)
	require.Equal(t, "older", active[1].Name)
}

func TestAssetRepository_Deactivate(t *testing.T) {
	ctx := context.Background()
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	repo := NewAssetRepository(db)

	proj := newTestProject("AI Patents", "u1")
	require.NoError(t, projects.Create(ctx, proj))
	a := newTestAsset(proj.ID)
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, repo.Deactivate(ctx, proj.ID, a.ID))
	// Already-inactive assets read as not found for a second removal
	require.ErrorIs(t, repo.Deactivate(ctx, proj.ID, a.ID), repository.ErrNotFound)

	active, err := repo.ListActive(ctx, proj.ID)
	require.NoError(t, err)
	require.Empty(t, active)

	// The row survives for audit purposes
	got, err := repo.Get(ctx, proj.ID, a.ID)
	require.NoError(t, err)
	require.False(t, got.Active)
}
