package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notion-progress-linker/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NOTION_API_KEY", "secret-token")
	t.Setenv("TASKS_DB_ID", "tasks-db")
	t.Setenv("WEEKLY_DB_ID", "weekly-db")
	t.Setenv("MONTHLY_DB_ID", "monthly-db")
}

func TestLoadAllowedIPsFromYAMLList(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
webhook:
  enabled: true
  secret: hook-secret
  allowed_ips:
    - 10.0.0.0/8
    - 192.168.1.5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, cfg.Webhook.AllowedIPs)
	assert.True(t, cfg.Webhook.Enabled)
}

func TestLoadAllowedIPsFromEnvString(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("webhook:\n  enabled: true\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("WEBHOOK_ALLOWED_IPS", "203.0.113.7,10.0.0.0/8")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"203.0.113.7", "10.0.0.0/8"}, cfg.Webhook.AllowedIPs)
}

func TestLoadMissingRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: info\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("NOTION_API_KEY", "")
	t.Setenv("TASKS_DB_ID", "")
	t.Setenv("WEEKLY_DB_ID", "")
	t.Setenv("MONTHLY_DB_ID", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_API_KEY")
}
