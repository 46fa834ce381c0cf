package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/auth"
	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/repository"
	"github.com/google/uuid"
)

// Service handles project operations.
type Service struct {
	repo       Repository
	activities ActivityLog
	identity   auth.Provider
	logger     *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, activities ActivityLog, identity auth.Provider, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, identity: identity, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name        string
	Description string
	Color       string
	Priority    string
	AccessLevel AccessLevel
	Tags        []string
	Settings    *Settings
}

// UpdateRequest carries a partial project update. Nil fields retain their
// prior values; setting Name regenerates the slug.
type UpdateRequest struct {
	Name        *string
	Description *string
	Color       *string
	Priority    *string
	AccessLevel *AccessLevel
	Tags        []string
	Settings    *Settings
}

// Create creates a new project owned by the resolved current user. The
// owner is added as a collaborator with RoleOwner in the same write.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	ident, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}

	access := req.AccessLevel
	if access == "" {
		access = AccessPrivate
	}
	if !access.Valid() {
		return nil, fmt.Errorf("%w: unknown access level %q", ErrInvalidInput, req.AccessLevel)
	}

	settings := DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	now := time.Now()
	proj := &Project{
		ID:           uuid.NewString(),
		OwnerID:      ident.UserID,
		OwnerName:    ident.DisplayName,
		Name:         name,
		Slug:         Slugify(name),
		Description:  req.Description,
		Color:        req.Color,
		Priority:     req.Priority,
		Status:       StatusActive,
		AccessLevel:  access,
		Tags:         normalizeTags(req.Tags),
		Settings:     settings,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActivity: now,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.record(ctx, &activity.Entry{
		ProjectID:   proj.ID,
		Type:        activity.TypeProjectCreated,
		Description: fmt.Sprintf("Created project %q", proj.Name),
		Actor:       ident.UserID,
		ActorName:   ident.DisplayName,
	})

	return proj, nil
}

// Get fetches a project by ID with its collaborators embedded.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	collabs, err := s.repo.ListCollaborators(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing collaborators: %w", err)
	}
	proj.Collaborators = collabs
	return proj, nil
}

// get fetches the bare project row. Mutations use it to avoid loading
// collaborator grants they don't touch.
func (s *Service) get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns one page of projects matching the filter, with pagination
// totals. A page past the end yields an empty page, not an error.
func (s *Service) List(ctx context.Context, opts ListOptions) (*Page, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.SortBy == "" {
		opts.SortBy = SortUpdatedAt
	}

	projects, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []Project{}
	}

	if opts.IncludeCollaborators {
		for i := range projects {
			collabs, err := s.repo.ListCollaborators(ctx, projects[i].ID)
			if err != nil {
				return nil, fmt.Errorf("listing collaborators: %w", err)
			}
			projects[i].Collaborators = collabs
		}
	}

	return &Page{
		Projects:   projects,
		Total:      total,
		Page:       opts.Page,
		PerPage:    opts.PerPage,
		TotalPages: (total + opts.PerPage - 1) / opts.PerPage,
	}, nil
}

// Update applies a partial update. Only provided fields change; a new name
// regenerates the slug; a settings change is recorded in the activity log.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Project, error) {
	ident, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	proj, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	settingsChanged := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: project name is required", ErrInvalidInput)
		}
		proj.Name = name
		proj.Slug = Slugify(name)
	}
	if req.Description != nil {
		proj.Description = *req.Description
	}
	if req.Color != nil {
		proj.Color = *req.Color
	}
	if req.Priority != nil {
		proj.Priority = *req.Priority
	}
	if req.AccessLevel != nil {
		if !req.AccessLevel.Valid() {
			return nil, fmt.Errorf("%w: unknown access level %q", ErrInvalidInput, *req.AccessLevel)
		}
		proj.AccessLevel = *req.AccessLevel
	}
	if req.Tags != nil {
		proj.Tags = normalizeTags(req.Tags)
	}
	if req.Settings != nil && *req.Settings != proj.Settings {
		proj.Settings = *req.Settings
		settingsChanged = true
	}
	proj.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}

	if settingsChanged {
		s.record(ctx, &activity.Entry{
			ProjectID:   proj.ID,
			Type:        activity.TypeSettingsChanged,
			Description: fmt.Sprintf("Updated settings for %q", proj.Name),
			Actor:       ident.UserID,
			ActorName:   ident.DisplayName,
		})
	}

	return proj, nil
}

// Archive flags a project archived without deleting any data.
func (s *Service) Archive(ctx context.Context, id string) (*Project, error) {
	proj, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if proj.Archived() {
		return proj, nil
	}
	proj.Status = StatusArchived
	proj.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, fmt.Errorf("archiving project: %w", err)
	}
	return proj, nil
}

// Delete hard-deletes a project. The store cascades the project's own
// assets, activities, collaborators, and milestones, and deactivates asset
// references in other projects that point at the deleted one.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// ListCollaborators returns the project's collaborator grants.
func (s *Service) ListCollaborators(ctx context.Context, projectID string) ([]Collaborator, error) {
	collabs, err := s.repo.ListCollaborators(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing collaborators: %w", err)
	}
	return collabs, nil
}

// AddCollaborator grants a user access to a project. RoleOwner cannot be
// granted; a project has exactly one owner, fixed at creation.
func (s *Service) AddCollaborator(ctx context.Context, projectID, userID, userName string, role Role) (*Collaborator, error) {
	ident, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if role == RoleOwner {
		return nil, fmt.Errorf("%w: a project has exactly one owner", ErrInvalidInput)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	proj, err := s.get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	collab := &Collaborator{
		ProjectID: projectID,
		UserID:    userID,
		UserName:  userName,
		Role:      role,
		AddedAt:   time.Now(),
	}
	if err := s.repo.AddCollaborator(ctx, collab); err != nil {
		return nil, fmt.Errorf("adding collaborator: %w", err)
	}

	s.record(ctx, &activity.Entry{
		ProjectID:   projectID,
		Type:        activity.TypeCollaborationInvited,
		Description: fmt.Sprintf("Invited %s to %q as %s", displayName(userName, userID), proj.Name, role),
		Actor:       ident.UserID,
		ActorName:   ident.DisplayName,
	})

	return collab, nil
}

// UpdateCollaboratorRole changes a collaborator's role. The owner's role
// is immutable and no collaborator can be promoted to owner.
func (s *Service) UpdateCollaboratorRole(ctx context.Context, projectID, userID string, role Role) error {
	if role == RoleOwner {
		return fmt.Errorf("%w: a project has exactly one owner", ErrInvalidInput)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	proj, err := s.get(ctx, projectID)
	if err != nil {
		return err
	}
	if proj.OwnerID == userID {
		return ErrOwnerImmutable
	}

	if err := s.repo.UpdateCollaboratorRole(ctx, projectID, userID, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCollaboratorNotFound
		}
		return fmt.Errorf("updating collaborator role: %w", err)
	}
	return nil
}

// RemoveCollaborator revokes a user's access. The owner cannot be removed.
func (s *Service) RemoveCollaborator(ctx context.Context, projectID, userID string) error {
	proj, err := s.get(ctx, projectID)
	if err != nil {
		return err
	}
	if proj.OwnerID == userID {
		return ErrOwnerImmutable
	}

	if err := s.repo.RemoveCollaborator(ctx, projectID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCollaboratorNotFound
		}
		return fmt.Errorf("removing collaborator: %w", err)
	}
	return nil
}

// record appends an audit entry. Audit failures do not fail the mutation
// that triggered them.
func (s *Service) record(ctx context.Context, entry *activity.Entry) {
	if s.activities == nil {
		return
	}
	if err := s.activities.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to record activity", "type", entry.Type, "project_id", entry.ProjectID, "error", err)
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
