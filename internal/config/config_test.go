package config_test

import (
	"os"
	"testing"
	"time"

	"taskclient/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8001", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.Keychain.Path)
	assert.False(t, cfg.Logging.Development)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yml := []byte("api:\n  base_url: https://tasks.example.com/\n  timeout: 5s\nlogging:\n  development: true\n")
	require.NoError(t, os.WriteFile("taskcli.yml", yml, 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "https://tasks.example.com", cfg.BaseURL(), "trailing slash is trimmed")
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TASKCLI_API_BASE_URL", "https://override.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://override.example.com", cfg.API.BaseURL)
}

func TestLoad_BadFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("taskcli.yml", []byte("{not yaml"), 0o644))

	_, err := config.Load()
	assert.Error(t, err)
}

// chdir changes into dir for the duration of the test (t.Chdir requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
