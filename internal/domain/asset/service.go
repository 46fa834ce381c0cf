package asset

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

// Service handles asset operations.
type Service struct {
	assets     Repository
	projects   ProjectStore
	activities ActivityLog
	identity   auth.Provider
	logger     *slog.Logger
}

// NewService creates a new asset service.
func NewService(assets Repository, projects ProjectStore, activities ActivityLog, identity auth.Provider, logger *slog.Logger) *Service {
	return &Service{
		assets:     assets,
		projects:   projects,
		activities: activities,
		identity:   identity,
		logger:     logger,
	}
}

// AddRequest defines asset creation inputs. A non-empty SharedFrom marks
// the asset as a cross-project reference and is validated against the
// target project's settings.
type AddRequest struct {
	Type        Type
	Name        string
	Description string
	Metadata    map[string]string
	SharedFrom  string
}

// ShareRequest copies an asset from one project into another as a shared
// reference.
type ShareRequest struct {
	AssetID       string
	FromProjectID string
	ToProjectID   string
}

// List returns a project's active assets, newest first.
func (s *Service) List(ctx context.Context, projectID string) ([]ProjectAsset, error) {
	assets, err := s.assets.ListActive(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	return assets, nil
}

// Get fetches a single asset within a project.
func (s *Service) Get(ctx context.Context, projectID, id string) (*ProjectAsset, error) {
	a, err := s.assets.Get(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	return a, nil
}

// Add attaches a new asset to a project. The uploader is stamped from the
// resolved current user. Cross-project references require the target
// project to allow them; the check happens at share time only.
func (s *Service) Add(ctx context.Context, projectID string, req AddRequest) (*ProjectAsset, error) {
	ident, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown asset type %q", ErrInvalidInput, req.Type)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: asset name is required", ErrInvalidInput)
	}

	proj, err := s.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	if req.SharedFrom != "" {
		if !proj.Settings.AllowCrossProjectAssets {
			return nil, ErrSharingDisabled
		}
		if _, err := s.projects.Get(ctx, req.SharedFrom); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: source project %s", ErrProjectNotFound, req.SharedFrom)
			}
			return nil, fmt.Errorf("loading source project: %w", err)
		}
	}

	now := time.Now()
	a := &ProjectAsset{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Type:        req.Type,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedBy:   ident.UserID,
		Active:      true,
		SharedFrom:  req.SharedFrom,
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.assets.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}
	if err := s.projects.AdjustAssetCount(ctx, projectID, 1); err != nil {
		return nil, fmt.Errorf("adjusting asset count: %w", err)
	}

	entryType := activity.TypeAssetAdded
	description := fmt.Sprintf("Added %s %q", a.Type, a.Name)
	if a.Shared() {
		entryType = activity.TypeAssetShared
		description = fmt.Sprintf("Shared %s %q from another project", a.Type, a.Name)
	}
	s.record(ctx, &activity.Entry{
		ProjectID:   projectID,
		Type:        entryType,
		Description: description,
		Actor:       ident.UserID,
		ActorName:   ident.DisplayName,
		AssetID:     a.ID,
		AssetType:   string(a.Type),
	})

	return a, nil
}

// Remove deactivates an asset. The row is kept for audit purposes.
func (s *Service) Remove(ctx context.Context, projectID, assetID string) error {
	ident, err := s.identity.Resolve(ctx)
	if err != nil {
		return err
	}

	a, err := s.Get(ctx, projectID, assetID)
	if err != nil {
		return err
	}

	if err := s.assets.Deactivate(ctx, projectID, assetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("removing asset: %w", err)
	}
	if err := s.projects.AdjustAssetCount(ctx, projectID, -1); err != nil {
		return fmt.Errorf("adjusting asset count: %w", err)
	}

	s.record(ctx, &activity.Entry{
		ProjectID:   projectID,
		Type:        activity.TypeAssetRemoved,
		Description: fmt.Sprintf("Removed %s %q", a.Type, a.Name),
		Actor:       ident.UserID,
		ActorName:   ident.DisplayName,
		AssetID:     a.ID,
		AssetType:   string(a.Type),
	})
	return nil
}

// Share copies an asset into another project as a reference. Re-sharing an
// asset that is itself a shared reference is rejected, so provenance stays
// single-hop and SharedFrom always names the project owning the original.
func (s *Service) Share(ctx context.Context, req ShareRequest) (*ProjectAsset, error) {
	source, err := s.Get(ctx, req.FromProjectID, req.AssetID)
	if err != nil {
		return nil, err
	}
	if source.Shared() {
		return nil, fmt.Errorf("%w: asset is already shared from another project", ErrInvalidInput)
	}

	return s.Add(ctx, req.ToProjectID, AddRequest{
		Type:        source.Type,
		Name:        source.Name,
		Description: source.Description,
		Metadata:    source.Metadata,
		SharedFrom:  req.FromProjectID,
	})
}

func (s *Service) record(ctx context.Context, entry *activity.Entry) {
	if s.activities == nil {
		return
	}
	if err := s.activities.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to record activity", "type", entry.Type, "project_id", entry.ProjectID, "error", err)
	}
}
