package mcp

import (
	"errors"
	"fmt"

	"github.com/aiborg-ai/patentdesk/internal/auth"
	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/domain/template"
	"github.com/aiborg-ai/patentdesk/internal/domain/workspace"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unmapped errors return
// nil and should be passed through as-is.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		return &APIError{Code: "NOT_AUTHENTICATED", Message: "no authenticated user", RecoveryHint: "Sign in or provide a demo session"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, project.ErrOwnerImmutable):
		return &APIError{Code: "OWNER_IMMUTABLE", Message: "the project owner cannot be changed or removed"}
	case errors.Is(err, project.ErrCollaboratorNotFound):
		return &APIError{Code: "COLLABORATOR_NOT_FOUND", Message: "collaborator not found", RecoveryHint: "List collaborators first"}
	case errors.Is(err, asset.ErrAssetNotFound):
		return &APIError{Code: "ASSET_NOT_FOUND", Message: "asset not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, asset.ErrSharingDisabled):
		return &APIError{Code: "SHARING_DISABLED", Message: "cross-project sharing is disabled for the target project", RecoveryHint: "Enable allow_cross_project_assets in project settings"}
	case errors.Is(err, milestone.ErrMilestoneNotFound):
		return &APIError{Code: "MILESTONE_NOT_FOUND", Message: "milestone not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, template.ErrTemplateNotFound):
		return &APIError{Code: "TEMPLATE_NOT_FOUND", Message: "template not found", RecoveryHint: "Call list_templates for valid IDs"}
	case errors.Is(err, workspace.ErrNoActiveProject):
		return &APIError{Code: "NO_ACTIVE_PROJECT", Message: "no project is currently selected", RecoveryHint: "Call set_current_project first"}
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, asset.ErrInvalidInput),
		errors.Is(err, milestone.ErrInvalidInput),
		errors.Is(err, template.ErrInvalidInput):
		return &APIError{Code: "VALIDATION_FAILED", Message: err.Error()}
	default:
		return nil
	}
}

// toolError converts a domain error into the error surfaced to MCP
// clients.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
