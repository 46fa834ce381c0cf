package project_test

import (
	"testing"

	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "ai-patents", project.Slugify("  AI Patents!! "))
	require.Equal(t, "my-project", project.Slugify("My Project"))
	require.Equal(t, "my-project", project.Slugify("my_project"))
	require.Equal(t, "fto-2026-q1", project.Slugify("FTO 2026 (Q1)"))
	require.Equal(t, "", project.Slugify("!!!"))
	require.Equal(t, "", project.Slugify("   "))
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"  AI Patents!! ", "My Project", "a--b__c", "Déjà vu"}
	for _, in := range inputs {
		once := project.Slugify(in)
		require.Equal(t, once, project.Slugify(once), "input %q", in)
	}
}

func TestSlugify_CollapsesSeparators(t *testing.T) {
	require.Equal(t, "a-b-c", project.Slugify("a  -  b __ c"))
}
