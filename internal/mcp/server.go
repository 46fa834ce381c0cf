package mcp

import (
	"context"
	"log/slog"

	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/domain/template"
	"github.com/aiborg-ai/patentdesk/internal/domain/workspace"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context, opts project.ListOptions) (*project.Page, error)
	Update(ctx context.Context, id string, req project.UpdateRequest) (*project.Project, error)
	Archive(ctx context.Context, id string) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	ListCollaborators(ctx context.Context, projectID string) ([]project.Collaborator, error)
	AddCollaborator(ctx context.Context, projectID, userID, userName string, role project.Role) (*project.Collaborator, error)
	UpdateCollaboratorRole(ctx context.Context, projectID, userID string, role project.Role) error
	RemoveCollaborator(ctx context.Context, projectID, userID string) error
}

// AssetService defines asset operations needed by MCP.
type AssetService interface {
	List(ctx context.Context, projectID string) ([]asset.ProjectAsset, error)
	Add(ctx context.Context, projectID string, req asset.AddRequest) (*asset.ProjectAsset, error)
	Remove(ctx context.Context, projectID, assetID string) error
	Share(ctx context.Context, req asset.ShareRequest) (*asset.ProjectAsset, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, projectID string, limit int) ([]activity.Entry, error)
}

// MilestoneService defines milestone operations needed by MCP.
type MilestoneService interface {
	List(ctx context.Context, projectID string) ([]milestone.Milestone, error)
	Add(ctx context.Context, projectID string, req milestone.AddRequest) (*milestone.Milestone, error)
	Update(ctx context.Context, id string, req milestone.UpdateRequest) (*milestone.Milestone, error)
}

// TemplateService defines template operations needed by MCP.
type TemplateService interface {
	List(ctx context.Context) ([]template.Template, error)
	CreateProject(ctx context.Context, templateID string, ov template.Overrides) (*project.Project, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects   ProjectService
	Assets     AssetService
	Activity   ActivityService
	Milestones MilestoneService
	Templates  TemplateService
	Workspace  *workspace.Workspace
}

// Config contains server configuration.
type Config struct {
	Services      Services
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

const serverInstructions = `Patent research project management. Projects organize search
queries, datasets, dashboards, and reports; one project is "current" at a
time and asset operations default to it. Use set_current_project before
adding assets, and list_templates / create_project_from_template to start
from a standard research workflow.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "patentdesk",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
