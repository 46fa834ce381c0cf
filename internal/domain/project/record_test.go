package project_test

import (
	"testing"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestFromRecord_Defaults(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := project.FromRecord(project.Record{
		ID:        "p1",
		OwnerID:   "u1",
		Name:      "AI Patents",
		Status:    "bogus",
		UpdatedAt: updated,
	})

	require.Equal(t, "ai-patents", p.Slug)
	require.Equal(t, project.StatusActive, p.Status)
	require.Equal(t, project.AccessPrivate, p.AccessLevel)
	require.Equal(t, project.DefaultSettings(), p.Settings)
	require.NotNil(t, p.Tags)
	require.Empty(t, p.Tags)
	require.Equal(t, updated, p.LastActivity)
}

func TestFromRecord_PublicFlag(t *testing.T) {
	p := project.FromRecord(project.Record{ID: "p1", Name: "x", IsPublic: true})
	require.Equal(t, project.AccessPublic, p.AccessLevel)
}

func TestToRecord_CollapsesAccessLevel(t *testing.T) {
	for _, level := range []project.AccessLevel{project.AccessPrivate, project.AccessTeam, project.AccessOrganization} {
		rec := project.ToRecord(project.Project{ID: "p1", AccessLevel: level})
		require.False(t, rec.IsPublic, "level %s", level)
	}
	rec := project.ToRecord(project.Project{ID: "p1", AccessLevel: project.AccessPublic})
	require.True(t, rec.IsPublic)
}

func TestRecord_RoundTripPreservesCoreFields(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	orig := project.Project{
		ID:           "p1",
		OwnerID:      "u1",
		Name:         "AI Patents",
		Slug:         "ai-patents",
		Status:       project.StatusArchived,
		AccessLevel:  project.AccessPublic,
		Tags:         []string{"ml"},
		Settings:     project.DefaultSettings(),
		AssetCount:   3,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActivity: now,
	}

	back := project.FromRecord(project.ToRecord(orig))
	require.Equal(t, orig.ID, back.ID)
	require.Equal(t, orig.Slug, back.Slug)
	require.Equal(t, orig.Status, back.Status)
	require.Equal(t, orig.AccessLevel, back.AccessLevel)
	require.Equal(t, orig.Tags, back.Tags)
	require.Equal(t, orig.AssetCount, back.AssetCount)
	require.Equal(t, orig.LastActivity, back.LastActivity)
}
