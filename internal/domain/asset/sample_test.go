package asset_test

import (
	"testing"

	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/stretchr/testify/require"
)

func TestBuildSamples_Dashboard(t *testing.T) {
	seeds := asset.BuildSamples("Dashboard Builder")
	require.Len(t, seeds, 2)
	require.Equal(t, asset.TypeDashboard, seeds[0].Type)
	require.Equal(t, asset.TypeDataset, seeds[1].Type)
	for _, seed := range seeds {
		require.Equal(t, "sample,trial", seed.Metadata["tags"])
		require.Equal(t, "trial-run", seed.Metadata["source"])
		require.NotEmpty(t, seed.Metadata["size_estimate"])
	}
}

func TestBuildSamples_Dataset(t *testing.T) {
	seeds := asset.BuildSamples("Patent Search")
	require.Len(t, seeds, 1)
	require.Equal(t, asset.TypeDataset, seeds[0].Type)
	require.NotEmpty(t, seeds[0].Metadata["record_count"])
}

func TestBuildSamples_DefaultsToReport(t *testing.T) {
	seeds := asset.BuildSamples("Citation Explorer")
	require.Len(t, seeds, 1)
	require.Equal(t, asset.TypeReport, seeds[0].Type)
}

func TestBuildSamples_EmptyCapability(t *testing.T) {
	seeds := asset.BuildSamples("")
	require.Len(t, seeds, 1)
	require.Equal(t, "Workbench Sample Report", seeds[0].Name)
}

func TestBuildSamples_Deterministic(t *testing.T) {
	require.Equal(t, asset.BuildSamples("dashboard"), asset.BuildSamples("dashboard"))
}
