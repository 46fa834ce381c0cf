package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aiborg-ai/patentdesk/internal/auth"
	"github.com/stretchr/testify/require"
)

func TestStatic_Resolve(t *testing.T) {
	ctx := context.Background()

	p := &auth.Static{Identity: auth.Identity{UserID: "u1", DisplayName: "Ada"}}
	ident, err := p.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, "u1", ident.UserID)

	empty := &auth.Static{}
	_, err = empty.Resolve(ctx)
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestDemoSession_Resolve(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "demo-user.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_id":"demo-1","display_name":"Demo User"}`), 0o644))

	p := &auth.DemoSession{Path: path}
	ident, err := p.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, "demo-1", ident.UserID)
	require.Equal(t, "Demo User", ident.DisplayName)
}

func TestDemoSession_MissingFile(t *testing.T) {
	ctx := context.Background()

	p := &auth.DemoSession{Path: filepath.Join(t.TempDir(), "absent.json")}
	_, err := p.Resolve(ctx)
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)

	unset := &auth.DemoSession{}
	_, err = unset.Resolve(ctx)
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestDemoSession_MalformedFile(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "demo-user.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	p := &auth.DemoSession{Path: path}
	_, err := p.Resolve(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestChain_DemoSessionWinsOverLiveAuth(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "demo-user.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_id":"demo-1"}`), 0o644))

	chain := auth.NewChain(
		&auth.DemoSession{Path: path},
		&auth.Static{Identity: auth.Identity{UserID: "live-1"}},
	)
	ident, err := chain.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, "demo-1", ident.UserID)
}

func TestChain_FallsBackWhenDemoSessionAbsent(t *testing.T) {
	ctx := context.Background()

	chain := auth.NewChain(
		&auth.DemoSession{Path: filepath.Join(t.TempDir(), "absent.json")},
		&auth.Static{Identity: auth.Identity{UserID: "live-1"}},
	)
	ident, err := chain.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, "live-1", ident.UserID)
}

func TestChain_Exhausted(t *testing.T) {
	ctx := context.Background()

	chain := auth.NewChain(&auth.Static{})
	_, err := chain.Resolve(ctx)
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}
