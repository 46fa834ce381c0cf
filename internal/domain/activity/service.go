package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Log appends an activity entry, stamping the current time if missing.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.ProjectID == "" {
		return ErrInvalidInput
	}
	if !entry.Type.Valid() {
		return fmt.Errorf("%w: unknown activity type %q", ErrInvalidInput, entry.Type)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// Recent lists a project's activity, newest first. A non-positive limit
// falls back to DefaultLimit.
func (s *Service) Recent(ctx context.Context, projectID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.repo.List(ctx, ListOptions{ProjectID: projectID, Limit: limit})
}

// List returns activity entries with full filtering options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return s.repo.List(ctx, opts)
}
