package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "stdio", cfg.Server.Transport)
	require.Equal(t, "patentdesk.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PATENTDESK_SERVER_PORT", "9090")
	t.Setenv("PATENTDESK_SERVER_TRANSPORT", "http")
	t.Setenv("PATENTDESK_DB_PATH", ":memory:")
	t.Setenv("PATENTDESK_USER_ID", "u1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "http", cfg.Server.Transport)
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, "u1", cfg.Auth.UserID)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PATENTDESK_SERVER_PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 3000
  transport: http
log:
  level: debug
auth:
  user_id: cfg-user
`), 0o644))
	t.Setenv("PATENTDESK_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "cfg-user", cfg.Auth.UserID)
	require.Equal(t, "0.0.0.0", cfg.Server.Host, "unset file fields keep defaults")
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644))
	t.Setenv("PATENTDESK_CONFIG_PATH", path)
	t.Setenv("PATENTDESK_SERVER_PORT", "4000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("PATENTDESK_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
