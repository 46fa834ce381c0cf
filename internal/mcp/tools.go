package mcp

import (
	"context"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/domain/template"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type listProjectsInput struct {
	Status               string `json:"status,omitempty" jsonschema:"filter by status (active, archived)"`
	OwnerID              string `json:"owner_id,omitempty" jsonschema:"filter by owner user ID"`
	Public               *bool  `json:"public,omitempty" jsonschema:"filter by public visibility"`
	Search               string `json:"search,omitempty" jsonschema:"substring match on name and description"`
	IncludeCollaborators bool   `json:"include_collaborators,omitempty" jsonschema:"embed each project's collaborator grants"`
	SortBy               string `json:"sort_by,omitempty" jsonschema:"sort field (name, created_at, updated_at, last_activity, asset_count)"`
	SortAscending        bool   `json:"sort_ascending,omitempty" jsonschema:"sort ascending instead of descending"`
	Page                 int    `json:"page,omitempty" jsonschema:"1-indexed page number"`
	PerPage              int    `json:"per_page,omitempty" jsonschema:"page size, defaults to 20"`
}

type projectIDInput struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
}

type createProjectInput struct {
	Name        string            `json:"name" jsonschema:"project name"`
	Description string            `json:"description,omitempty" jsonschema:"project description"`
	Color       string            `json:"color,omitempty" jsonschema:"display color"`
	Priority    string            `json:"priority,omitempty" jsonschema:"priority label"`
	AccessLevel string            `json:"access_level,omitempty" jsonschema:"access level (private, team, organization, public)"`
	Tags        []string          `json:"tags,omitempty" jsonschema:"project tags"`
	Settings    *project.Settings `json:"settings,omitempty" jsonschema:"project settings, defaults applied when omitted"`
}

type updateProjectInput struct {
	ProjectID   string            `json:"project_id" jsonschema:"project ID"`
	Name        *string           `json:"name,omitempty" jsonschema:"new name, regenerates the slug"`
	Description *string           `json:"description,omitempty" jsonschema:"new description"`
	Color       *string           `json:"color,omitempty" jsonschema:"new display color"`
	Priority    *string           `json:"priority,omitempty" jsonschema:"new priority label"`
	AccessLevel *string           `json:"access_level,omitempty" jsonschema:"new access level"`
	Tags        []string          `json:"tags,omitempty" jsonschema:"replacement tag set"`
	Settings    *project.Settings `json:"settings,omitempty" jsonschema:"replacement settings"`
}

type collaboratorInput struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
	UserID    string `json:"user_id" jsonschema:"user ID to grant access to"`
	UserName  string `json:"user_name,omitempty" jsonschema:"display name of the user"`
	Role      string `json:"role" jsonschema:"role to grant (admin, contributor, viewer)"`
}

type collaboratorKeyInput struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
	UserID    string `json:"user_id" jsonschema:"collaborator user ID"`
}

type collaboratorRoleInput struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
	UserID    string `json:"user_id" jsonschema:"collaborator user ID"`
	Role      string `json:"role" jsonschema:"new role (admin, contributor, viewer)"`
}

type addAssetInput struct {
	ProjectID   string            `json:"project_id,omitempty" jsonschema:"project ID, defaults to the current project"`
	Type        string            `json:"type" jsonschema:"asset type (search-query, dataset, dashboard, report, collection, claimed-work, network-contact)"`
	Name        string            `json:"name" jsonschema:"asset name"`
	Description string            `json:"description,omitempty" jsonschema:"asset description"`
	Metadata    map[string]string `json:"metadata,omitempty" jsonschema:"free-form asset metadata"`
}

type listAssetsInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"project ID, defaults to the current project"`
}

type removeAssetInput struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
	AssetID   string `json:"asset_id" jsonschema:"asset ID to remove"`
}

type shareAssetInput struct {
	AssetID       string `json:"asset_id" jsonschema:"asset ID in the source project"`
	FromProjectID string `json:"from_project_id" jsonschema:"source project ID"`
	ToProjectID   string `json:"to_project_id" jsonschema:"destination project ID"`
}

type logActivityInput struct {
	Type        string            `json:"type" jsonschema:"activity type (e.g. search_performed, report_generated)"`
	Description string            `json:"description,omitempty" jsonschema:"human-readable description"`
	Metadata    map[string]string `json:"metadata,omitempty" jsonschema:"free-form activity metadata"`
}

type recentActivityInput struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum entries, defaults to 50"`
}

type addMilestoneInput struct {
	ProjectID   string `json:"project_id" jsonschema:"project ID"`
	Title       string `json:"title" jsonschema:"milestone title"`
	Description string `json:"description,omitempty" jsonschema:"milestone description"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"due date (RFC 3339)"`
	SortOrder   int    `json:"sort_order,omitempty" jsonschema:"position in the milestone list"`
}

type updateMilestoneInput struct {
	MilestoneID string  `json:"milestone_id" jsonschema:"milestone ID"`
	Title       *string `json:"title,omitempty" jsonschema:"new title"`
	Description *string `json:"description,omitempty" jsonschema:"new description"`
	DueDate     *string `json:"due_date,omitempty" jsonschema:"new due date (RFC 3339)"`
	Status      *string `json:"status,omitempty" jsonschema:"new status (pending, in_progress, completed)"`
	SortOrder   *int    `json:"sort_order,omitempty" jsonschema:"new position"`
}

type createFromTemplateInput struct {
	TemplateID  string            `json:"template_id" jsonschema:"template ID"`
	Name        string            `json:"name,omitempty" jsonschema:"project name, defaults to the template name"`
	Description string            `json:"description,omitempty" jsonschema:"project description"`
	Color       string            `json:"color,omitempty" jsonschema:"display color"`
	Priority    string            `json:"priority,omitempty" jsonschema:"priority label"`
	AccessLevel string            `json:"access_level,omitempty" jsonschema:"access level"`
	Tags        []string          `json:"tags,omitempty" jsonschema:"extra tags, merged with the template's"`
	Settings    *project.Settings `json:"settings,omitempty" jsonschema:"settings, template defaults when omitted"`
}

type attachSamplesInput struct {
	Capability string `json:"capability,omitempty" jsonschema:"capability being trialed (e.g. dashboard, dataset, search)"`
}

type emptyInput struct{}

type projectOutput struct {
	Project *project.Project `json:"project"`
}

type projectPageOutput struct {
	Projects   []project.Project `json:"projects"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

type statusOutput struct {
	Status string `json:"status"`
}

type collaboratorsOutput struct {
	Collaborators []project.Collaborator `json:"collaborators"`
}

type collaboratorOutput struct {
	Collaborator *project.Collaborator `json:"collaborator"`
}

type assetOutput struct {
	Asset *asset.ProjectAsset `json:"asset"`
}

type assetsOutput struct {
	Assets []asset.ProjectAsset `json:"assets"`
}

type activityOutput struct {
	Entries []activity.Entry `json:"entries"`
}

type milestoneOutput struct {
	Milestone *milestone.Milestone `json:"milestone"`
}

type milestonesOutput struct {
	Milestones []milestone.Milestone `json:"milestones"`
}

type templatesOutput struct {
	Templates []template.Template `json:"templates"`
}

// registerTools wires every tool to its domain service.
func registerTools(server *sdkmcp.Server, svc Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects with filtering, sorting, and pagination",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in listProjectsInput) (*sdkmcp.CallToolResult, projectPageOutput, error) {
		page, err := svc.Projects.List(ctx, project.ListOptions{
			Status:               project.Status(in.Status),
			OwnerID:              in.OwnerID,
			IsPublic:             in.Public,
			Search:               in.Search,
			IncludeCollaborators: in.IncludeCollaborators,
			SortBy:               in.SortBy,
			SortAscending:        in.SortAscending,
			Page:                 in.Page,
			PerPage:              in.PerPage,
		})
		if err != nil {
			return nil, projectPageOutput{}, toolError(err)
		}
		return nil, projectPageOutput{
			Projects:   page.Projects,
			Total:      page.Total,
			Page:       page.Page,
			PerPage:    page.PerPage,
			TotalPages: page.TotalPages,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project by ID, including its collaborators",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in projectIDInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		proj, err := svc.Projects.Get(ctx, in.ProjectID)
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project owned by the current user",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in createProjectInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		proj, err := svc.Projects.Create(ctx, project.CreateRequest{
			Name:        in.Name,
			Description: in.Description,
			Color:       in.Color,
			Priority:    in.Priority,
			AccessLevel: project.AccessLevel(in.AccessLevel),
			Tags:        in.Tags,
			Settings:    in.Settings,
		})
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update project fields; only provided fields change",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in updateProjectInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		update := project.UpdateRequest{
			Name:        in.Name,
			Description: in.Description,
			Color:       in.Color,
			Priority:    in.Priority,
			Tags:        in.Tags,
			Settings:    in.Settings,
		}
		if in.AccessLevel != nil {
			level := project.AccessLevel(*in.AccessLevel)
			update.AccessLevel = &level
		}
		proj, err := svc.Projects.Update(ctx, in.ProjectID, update)
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "archive_project",
		Description: "Archive a project without deleting its data",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in projectIDInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		proj, err := svc.Projects.Archive(ctx, in.ProjectID)
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Permanently delete a project and its assets, activity, and milestones",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in projectIDInput) (*sdkmcp.CallToolResult, statusOutput, error) {
		if err := svc.Projects.Delete(ctx, in.ProjectID); err != nil {
			return nil, statusOutput{}, toolError(err)
		}
		return nil, statusOutput{Status: "deleted"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_collaborators",
		Description: "List a project's collaborators",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in projectIDInput) (*sdkmcp.CallToolResult, collaboratorsOutput, error) {
		collabs, err := svc.Projects.ListCollaborators(ctx, in.ProjectID)
		if err != nil {
			return nil, collaboratorsOutput{}, toolError(err)
		}
		return nil, collaboratorsOutput{Collaborators: collabs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_collaborator",
		Description: "Grant a user access to a project; the owner role cannot be granted",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in collaboratorInput) (*sdkmcp.CallToolResult, collaboratorOutput, error) {
		collab, err := svc.Projects.AddCollaborator(ctx, in.ProjectID, in.UserID, in.UserName, project.Role(in.Role))
		if err != nil {
			return nil, collaboratorOutput{}, toolError(err)
		}
		return nil, collaboratorOutput{Collaborator: collab}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_collaborator_role",
		Description: "Change a collaborator's role; the owner's role is immutable",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in collaboratorRoleInput) (*sdkmcp.CallToolResult, statusOutput, error) {
		if err := svc.Projects.UpdateCollaboratorRole(ctx, in.ProjectID, in.UserID, project.Role(in.Role)); err != nil {
			return nil, statusOutput{}, toolError(err)
		}
		return nil, statusOutput{Status: "updated"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_collaborator",
		Description: "Revoke a collaborator's access; the owner cannot be removed",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in collaboratorKeyInput) (*sdkmcp.CallToolResult, statusOutput, error) {
		if err := svc.Projects.RemoveCollaborator(ctx, in.ProjectID, in.UserID); err != nil {
			return nil, statusOutput{}, toolError(err)
		}
		return nil, statusOutput{Status: "removed"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_current_project",
		Description: "Select the project that asset and activity operations default to",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in projectIDInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		proj, err := svc.Projects.Get(ctx, in.ProjectID)
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		svc.Workspace.SetCurrent(proj)
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_current_project",
		Description: "Get the currently selected project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		proj, err := svc.Workspace.Current()
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_asset",
		Description: "Attach an asset to a project (defaults to the current project)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addAssetInput) (*sdkmcp.CallToolResult, assetOutput, error) {
		addReq := asset.AddRequest{
			Type:        asset.Type(in.Type),
			Name:        in.Name,
			Description: in.Description,
			Metadata:    in.Metadata,
		}
		var created *asset.ProjectAsset
		var err error
		if in.ProjectID == "" {
			created, err = svc.Workspace.AddAsset(ctx, addReq)
		} else {
			created, err = svc.Assets.Add(ctx, in.ProjectID, addReq)
		}
		if err != nil {
			return nil, assetOutput{}, toolError(err)
		}
		return nil, assetOutput{Asset: created}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_assets",
		Description: "List a project's active assets (defaults to the current project)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in listAssetsInput) (*sdkmcp.CallToolResult, assetsOutput, error) {
		projectID := in.ProjectID
		if projectID == "" {
			current, err := svc.Workspace.Current()
			if err != nil {
				return nil, assetsOutput{}, toolError(err)
			}
			projectID = current.ID
		}
		assets, err := svc.Assets.List(ctx, projectID)
		if err != nil {
			return nil, assetsOutput{}, toolError(err)
		}
		return nil, assetsOutput{Assets: assets}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_asset",
		Description: "Remove an asset from a project (soft delete)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in removeAssetInput) (*sdkmcp.CallToolResult, statusOutput, error) {
		if err := svc.Assets.Remove(ctx, in.ProjectID, in.AssetID); err != nil {
			return nil, statusOutput{}, toolError(err)
		}
		return nil, statusOutput{Status: "removed"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "share_asset",
		Description: "Share an asset from one project into another; shared copies cannot be re-shared",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in shareAssetInput) (*sdkmcp.CallToolResult, assetOutput, error) {
		shared, err := svc.Assets.Share(ctx, asset.ShareRequest{
			AssetID:       in.AssetID,
			FromProjectID: in.FromProjectID,
			ToProjectID:   in.ToProjectID,
		})
		if err != nil {
			return nil, assetOutput{}, toolError(err)
		}
		return nil, assetOutput{Asset: shared}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "log_activity",
		Description: "Record an activity entry against the current project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in logActivityInput) (*sdkmcp.CallToolResult, statusOutput, error) {
		if err := svc.Workspace.LogActivity(ctx, activity.Type(in.Type), in.Description, in.Metadata); err != nil {
			return nil, statusOutput{}, toolError(err)
		}
		return nil, statusOutput{Status: "logged"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_activity",
		Description: "Get a project's recent activity, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in recentActivityInput) (*sdkmcp.CallToolResult, activityOutput, error) {
		entries, err := svc.Activity.Recent(ctx, in.ProjectID, in.Limit)
		if err != nil {
			return nil, activityOutput{}, toolError(err)
		}
		return nil, activityOutput{Entries: entries}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_milestones",
		Description: "List a project's milestones in order",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in projectIDInput) (*sdkmcp.CallToolResult, milestonesOutput, error) {
		milestones, err := svc.Milestones.List(ctx, in.ProjectID)
		if err != nil {
			return nil, milestonesOutput{}, toolError(err)
		}
		return nil, milestonesOutput{Milestones: milestones}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_milestone",
		Description: "Add a milestone to a project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addMilestoneInput) (*sdkmcp.CallToolResult, milestoneOutput, error) {
		var due time.Time
		if in.DueDate != "" {
			parsed, err := time.Parse(time.RFC3339, in.DueDate)
			if err != nil {
				return nil, milestoneOutput{}, &APIError{Code: "VALIDATION_FAILED", Message: "due_date must be RFC 3339"}
			}
			due = parsed
		}
		m, err := svc.Milestones.Add(ctx, in.ProjectID, milestone.AddRequest{
			Title:       in.Title,
			Description: in.Description,
			DueDate:     due,
			SortOrder:   in.SortOrder,
		})
		if err != nil {
			return nil, milestoneOutput{}, toolError(err)
		}
		return nil, milestoneOutput{Milestone: m}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_milestone",
		Description: "Update a milestone; only provided fields change",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in updateMilestoneInput) (*sdkmcp.CallToolResult, milestoneOutput, error) {
		update := milestone.UpdateRequest{
			Title:       in.Title,
			Description: in.Description,
			SortOrder:   in.SortOrder,
		}
		if in.DueDate != nil {
			parsed, err := time.Parse(time.RFC3339, *in.DueDate)
			if err != nil {
				return nil, milestoneOutput{}, &APIError{Code: "VALIDATION_FAILED", Message: "due_date must be RFC 3339"}
			}
			update.DueDate = &parsed
		}
		if in.Status != nil {
			status := milestone.Status(*in.Status)
			update.Status = &status
		}
		m, err := svc.Milestones.Update(ctx, in.MilestoneID, update)
		if err != nil {
			return nil, milestoneOutput{}, toolError(err)
		}
		return nil, milestoneOutput{Milestone: m}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_templates",
		Description: "List available project templates",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyInput) (*sdkmcp.CallToolResult, templatesOutput, error) {
		templates, err := svc.Templates.List(ctx)
		if err != nil {
			return nil, templatesOutput{}, toolError(err)
		}
		return nil, templatesOutput{Templates: templates}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project_from_template",
		Description: "Create a project from a template, with overrides winning on scalar fields and tags merged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in createFromTemplateInput) (*sdkmcp.CallToolResult, projectOutput, error) {
		proj, err := svc.Templates.CreateProject(ctx, in.TemplateID, template.Overrides{
			Name:        in.Name,
			Description: in.Description,
			Color:       in.Color,
			Priority:    in.Priority,
			AccessLevel: project.AccessLevel(in.AccessLevel),
			Tags:        in.Tags,
			Settings:    in.Settings,
		})
		if err != nil {
			return nil, projectOutput{}, toolError(err)
		}
		return nil, projectOutput{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "attach_sample_assets",
		Description: "Seed the current project with sample assets for a capability trial",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in attachSamplesInput) (*sdkmcp.CallToolResult, assetsOutput, error) {
		attached, err := svc.Workspace.AttachSamples(ctx, in.Capability)
		if err != nil {
			return nil, assetsOutput{}, toolError(err)
		}
		return nil, assetsOutput{Assets: attached}, nil
	})
}
