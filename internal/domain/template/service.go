package template

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/domain/milestone"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
	"github.com/aiborg-ai/patentdesk/internal/repository"
)

// Service handles template operations.
type Service struct {
	templates  Repository
	projects   ProjectCreator
	milestones MilestoneCreator
	logger     *slog.Logger
}

// NewService creates a new template service.
func NewService(templates Repository, projects ProjectCreator, milestones MilestoneCreator, logger *slog.Logger) *Service {
	return &Service{
		templates:  templates,
		projects:   projects,
		milestones: milestones,
		logger:     logger,
	}
}

// Overrides carries caller-supplied values that win over template defaults
// on scalar fields. Tags are unioned with the template's recommended tags
// instead of replacing them.
type Overrides struct {
	Name        string
	Description string
	Color       string
	Priority    string
	AccessLevel project.AccessLevel
	Tags        []string
	Settings    *project.Settings
}

// List returns all templates.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return templates, nil
}

// Get fetches a template by ID.
func (s *Service) Get(ctx context.Context, id string) (*Template, error) {
	tmpl, err := s.templates.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return tmpl, nil
}

// CreateProject instantiates a template into a new project. Caller
// overrides win on scalar fields, tag sets are unioned, and each suggested
// milestone is scheduled weeksFromStart weeks out from now. The template's
// usage counter is incremented as an observable side effect.
func (s *Service) CreateProject(ctx context.Context, templateID string, ov Overrides) (*project.Project, error) {
	tmpl, err := s.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(ov.Name)
	if name == "" {
		name = tmpl.Name
	}
	description := ov.Description
	if description == "" {
		description = tmpl.Description
	}
	priority := ov.Priority
	if priority == "" {
		priority = tmpl.DefaultPriority
	}
	settings := tmpl.DefaultSettings
	if ov.Settings != nil {
		settings = *ov.Settings
	}

	proj, err := s.projects.Create(ctx, project.CreateRequest{
		Name:        name,
		Description: description,
		Color:       ov.Color,
		Priority:    priority,
		AccessLevel: ov.AccessLevel,
		Tags:        unionTags(tmpl.RecommendedTags, ov.Tags),
		Settings:    &settings,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i, sm := range tmpl.SuggestedMilestones {
		due := now.Add(time.Duration(sm.WeeksFromStart) * 7 * 24 * time.Hour)
		if _, err := s.milestones.Add(ctx, proj.ID, milestone.AddRequest{
			Title:       sm.Title,
			Description: sm.Description,
			DueDate:     due,
			SortOrder:   i,
		}); err != nil {
			return nil, fmt.Errorf("creating milestone %q: %w", sm.Title, err)
		}
	}

	if err := s.templates.IncrementUsage(ctx, templateID); err != nil {
		return nil, fmt.Errorf("incrementing template usage: %w", err)
	}

	return proj, nil
}

// unionTags merges two tag sets, preserving first-seen order.
func unionTags(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, tag := range append(append([]string{}, base...), extra...) {
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
