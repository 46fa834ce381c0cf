package project_test

import (
	"testing"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestCategorize_Partition(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	old := now.Add(-60 * 24 * time.Hour)

	owned := project.Project{ID: "owned", OwnerID: "me", Status: project.StatusActive, UpdatedAt: old}
	fresh := project.Project{ID: "fresh", OwnerID: "other", Status: project.StatusActive, UpdatedAt: now.Add(-time.Hour)}
	shared := project.Project{
		ID: "shared", OwnerID: "other", Status: project.StatusActive, UpdatedAt: old,
		Collaborators: []project.Collaborator{{UserID: "me", Role: project.RoleViewer}},
	}
	stale := project.Project{ID: "stale", OwnerID: "other", Status: project.StatusActive, UpdatedAt: old}
	archived := project.Project{ID: "archived", OwnerID: "me", Status: project.StatusArchived, UpdatedAt: now}

	buckets := project.Categorize([]project.Project{owned, fresh, shared, stale, archived}, "me", now)

	require.Len(t, buckets.Recent, 2)
	require.Equal(t, "owned", buckets.Recent[0].ID)
	require.Equal(t, "fresh", buckets.Recent[1].ID)
	require.Len(t, buckets.Shared, 1)
	require.Equal(t, "shared", buckets.Shared[0].ID)
	require.Len(t, buckets.Other, 1)
	require.Equal(t, "stale", buckets.Other[0].ID)
}

func TestCategorize_Disjoint(t *testing.T) {
	now := time.Now()
	// A freshly updated project the user also collaborates on lands in
	// Recent only.
	p := project.Project{
		ID: "p", OwnerID: "other", Status: project.StatusActive, UpdatedAt: now,
		Collaborators: []project.Collaborator{{UserID: "me"}},
	}
	buckets := project.Categorize([]project.Project{p}, "me", now)
	require.Len(t, buckets.Recent, 1)
	require.Empty(t, buckets.Shared)
	require.Empty(t, buckets.Other)
}

func TestCategorize_EmptyInput(t *testing.T) {
	buckets := project.Categorize(nil, "me", time.Now())
	require.NotNil(t, buckets.Recent)
	require.NotNil(t, buckets.Shared)
	require.NotNil(t, buckets.Other)
	require.Empty(t, buckets.Recent)
}

func TestMatchesFilter(t *testing.T) {
	p := project.Project{
		Name:        "AI Patents",
		Description: "Landscape of neural filings",
		Tags:        []string{"machine-learning"},
		AccessLevel: project.AccessPrivate,
	}

	require.True(t, project.MatchesFilter(p, "", ""))
	require.True(t, project.MatchesFilter(p, "", "all"))
	require.True(t, project.MatchesFilter(p, "patents", ""))
	require.True(t, project.MatchesFilter(p, "NEURAL", ""))
	require.True(t, project.MatchesFilter(p, "learning", ""))
	require.False(t, project.MatchesFilter(p, "quantum", ""))
	require.False(t, project.MatchesFilter(p, "", "public"))
	require.True(t, project.MatchesFilter(p, "", "private"))
}
