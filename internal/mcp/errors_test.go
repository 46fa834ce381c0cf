package mcp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aiborg-ai/patentdesk/internal/auth"
	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/domain/workspace"
	"github.com/aiborg-ai/patentdesk/internal/mcp"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not authenticated", auth.ErrNotAuthenticated, "NOT_AUTHENTICATED"},
		{"project not found", project.ErrProjectNotFound, "PROJECT_NOT_FOUND"},
		{"wrapped project not found", fmt.Errorf("getting project: %w", project.ErrProjectNotFound), "PROJECT_NOT_FOUND"},
		{"owner immutable", project.ErrOwnerImmutable, "OWNER_IMMUTABLE"},
		{"sharing disabled", asset.ErrSharingDisabled, "SHARING_DISABLED"},
		{"no active project", workspace.ErrNoActiveProject, "NO_ACTIVE_PROJECT"},
		{"validation", fmt.Errorf("%w: name is required", project.ErrInvalidInput), "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mcp.MapError(tt.err)
			require.NotNil(t, apiErr)
			require.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	require.Nil(t, mcp.MapError(nil))
	require.Nil(t, mcp.MapError(errors.New("disk full")))
}

func TestAPIError_Error(t *testing.T) {
	err := &mcp.APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found"}
	require.Equal(t, "PROJECT_NOT_FOUND: project not found", err.Error())
}
