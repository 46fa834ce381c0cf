// Package auth resolves the acting user's identity. Authentication itself
// is an external collaborator; this package only defines the resolution
// seam and the ordered fallback between a locally persisted demo session
// and the live auth source.
package auth

import (
	"context"
	"errors"
)

// Identity is the resolved acting user.
type Identity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// ErrNotAuthenticated indicates no provider could resolve a user id. Write
// operations fail fast on it.
var ErrNotAuthenticated = errors.New("not authenticated")

// Provider resolves the current user. Implementations return
// ErrNotAuthenticated when they have no session to offer.
type Provider interface {
	Resolve(ctx context.Context) (*Identity, error)
}

// Chain tries providers in order and returns the first successful
// resolution. The precedence rule (demo session before live auth) is
// expressed by construction order rather than ambient storage lookups.
type Chain struct {
	providers []Provider
}

// NewChain creates a provider chain. Providers are consulted in the order
// given.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Resolve returns the first identity any provider yields, or
// ErrNotAuthenticated when the chain is exhausted.
func (c *Chain) Resolve(ctx context.Context) (*Identity, error) {
	for _, p := range c.providers {
		ident, err := p.Resolve(ctx)
		if err == nil && ident != nil && ident.UserID != "" {
			return ident, nil
		}
	}
	return nil, ErrNotAuthenticated
}

// Static always resolves to a fixed identity. It stands in for the external
// auth collaborator in local and test setups.
type Static struct {
	Identity Identity
}

// Resolve returns the fixed identity, or ErrNotAuthenticated when no user
// id is configured.
func (s *Static) Resolve(ctx context.Context) (*Identity, error) {
	if s.Identity.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	ident := s.Identity
	return &ident, nil
}
