package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DemoSession resolves identity from a locally persisted demo-user record.
// When the file exists it takes priority over live auth, so it is placed
// first in the chain.
type DemoSession struct {
	Path string
}

type demoUserRecord struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Resolve reads the demo-user record. A missing file means no demo session,
// not a failure.
func (d *DemoSession) Resolve(ctx context.Context) (*Identity, error) {
	if d.Path == "" {
		return nil, ErrNotAuthenticated
	}
	data, err := os.ReadFile(d.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("reading demo session: %w", err)
	}
	var rec demoUserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing demo session: %w", err)
	}
	if rec.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	return &Identity{
		UserID:      rec.UserID,
		DisplayName: rec.DisplayName,
		Email:       rec.Email,
	}, nil
}
