package milestone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/repository"
	"github.com/google/uuid"
)

// Service handles milestone operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new milestone service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AddRequest defines milestone creation inputs.
type AddRequest struct {
	Title       string
	Description string
	DueDate     time.Time
	SortOrder   int
}

// UpdateRequest carries a partial milestone update. Nil fields retain
// their prior values.
type UpdateRequest struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *Status
	SortOrder   *int
}

// List returns a project's milestones ordered by sort order.
func (s *Service) List(ctx context.Context, projectID string) ([]Milestone, error) {
	milestones, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	return milestones, nil
}

// Add attaches a milestone to a project.
func (s *Service) Add(ctx context.Context, projectID string, req AddRequest) (*Milestone, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: milestone title is required", ErrInvalidInput)
	}

	now := time.Now()
	m := &Milestone{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      StatusPending,
		SortOrder:   req.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("creating milestone: %w", err)
	}
	return m, nil
}

// Update applies a partial update to a milestone.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Milestone, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("getting milestone: %w", err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: milestone title is required", ErrInvalidInput)
		}
		m.Title = title
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.DueDate != nil {
		m.DueDate = *req.DueDate
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		m.Status = *req.Status
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}
	m.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("updating milestone: %w", err)
	}
	return m, nil
}
