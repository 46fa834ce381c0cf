// Package workspace tracks the user's current project and fans out
// change notifications to interested components.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aiborg-ai/patentdesk/internal/auth"
	"github.com/aiborg-ai/patentdesk/internal/domain/activity"
	"github.com/aiborg-ai/patentdesk/internal/domain/asset"
	"github.com/aiborg-ai/patentdesk/internal/domain/project"
)

// Listener is notified whenever the current project changes. Listeners
// are compared by identity for de-duplication, so register pointer
// implementations rather than value types.
type Listener interface {
	CurrentProjectChanged(p *project.Project)
}

// AssetWriter attaches assets to a project.
type AssetWriter interface {
	Add(ctx context.Context, projectID string, req asset.AddRequest) (*asset.ProjectAsset, error)
}

// ActivityWriter records activity entries.
type ActivityWriter interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Workspace holds the single current project for a session. All methods
// are safe for concurrent use. Listener notifications run synchronously
// in subscription order, outside the workspace lock.
type Workspace struct {
	mu          sync.Mutex
	initialized bool
	current     *project.Project
	listeners   []Listener

	assets     AssetWriter
	activities ActivityWriter
	identity   auth.Provider
	logger     *slog.Logger
}

// New creates a workspace.
func New(assets AssetWriter, activities ActivityWriter, identity auth.Provider, logger *slog.Logger) *Workspace {
	return &Workspace{
		assets:     assets,
		activities: activities,
		identity:   identity,
		logger:     logger,
	}
}

// Initialize marks the workspace ready. Calling it again is a no-op and
// leaves the current selection untouched.
func (w *Workspace) Initialize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.initialized {
		return
	}
	w.initialized = true
}

// Current returns the active project, or ErrNoActiveProject when none is
// selected.
func (w *Workspace) Current() (*project.Project, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return nil, ErrNoActiveProject
	}
	return w.current, nil
}

// SetCurrent replaces the active project and notifies every listener,
// even when the same project is set again. Passing nil clears the
// selection.
func (w *Workspace) SetCurrent(p *project.Project) {
	w.mu.Lock()
	w.current = p
	listeners := make([]Listener, len(w.listeners))
	copy(listeners, w.listeners)
	w.mu.Unlock()

	for _, l := range listeners {
		l.CurrentProjectChanged(p)
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Registering the same listener twice keeps a single registration.
func (w *Workspace) Subscribe(l Listener) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, existing := range w.listeners {
		if existing == l {
			return func() { w.unsubscribe(l) }
		}
	}
	w.listeners = append(w.listeners, l)
	return func() { w.unsubscribe(l) }
}

func (w *Workspace) unsubscribe(l Listener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, existing := range w.listeners {
		if existing == l {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return
		}
	}
}

// LogActivity records an activity entry against the current project,
// resolving the actor from the identity provider. Without an active
// project it returns ErrNoActiveProject and records nothing.
func (w *Workspace) LogActivity(ctx context.Context, typ activity.Type, description string, metadata map[string]string) error {
	current, err := w.Current()
	if err != nil {
		if w.logger != nil {
			w.logger.Warn("activity dropped, no active project", "type", typ)
		}
		return err
	}

	entry := &activity.Entry{
		ProjectID:   current.ID,
		Type:        typ,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	if ident, err := w.identity.Resolve(ctx); err == nil {
		entry.Actor = ident.UserID
		entry.ActorName = ident.DisplayName
	}

	if err := w.activities.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// AddAsset attaches an asset to the current project and bumps the cached
// asset count on success.
func (w *Workspace) AddAsset(ctx context.Context, req asset.AddRequest) (*asset.ProjectAsset, error) {
	current, err := w.Current()
	if err != nil {
		return nil, err
	}

	created, err := w.assets.Add(ctx, current.ID, req)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	if w.current != nil && w.current.ID == current.ID {
		w.current.AssetCount++
	}
	w.mu.Unlock()

	return created, nil
}

// AttachSamples seeds the current project with sample assets for a trial
// run of the named capability.
func (w *Workspace) AttachSamples(ctx context.Context, capability string) ([]asset.ProjectAsset, error) {
	if _, err := w.Current(); err != nil {
		return nil, err
	}

	seeds := asset.BuildSamples(capability)
	attached := make([]asset.ProjectAsset, 0, len(seeds))
	for _, seed := range seeds {
		created, err := w.AddAsset(ctx, seed)
		if err != nil {
			return nil, fmt.Errorf("attaching sample %q: %w", seed.Name, err)
		}
		attached = append(attached, *created)
	}
	return attached, nil
}
