package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable so that defaults apply.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name), "Failed to unset environment variable %s", name)
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	setupEnv(t, map[string]string{
		"TASKLIST_SERVER_PORT":        "",
		"TASKLIST_SERVER_LOG_LEVEL":   "",
		"TASKLIST_STORE_SEED_ENABLED": "",
		"TASKLIST_STORE_SEED_FILE":    "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 15, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, 15, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.True(t, cfg.Store.SeedEnabled, "Seeding should be enabled by default")
	assert.Empty(t, cfg.Store.SeedFile)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	seedFile := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(seedFile, []byte(""), 0o600))

	setupEnv(t, map[string]string{
		"TASKLIST_SERVER_PORT":        "9090",
		"TASKLIST_SERVER_LOG_LEVEL":   "debug",
		"TASKLIST_STORE_SEED_ENABLED": "false",
		"TASKLIST_STORE_SEED_FILE":    seedFile,
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.False(t, cfg.Store.SeedEnabled)
	assert.Equal(t, seedFile, cfg.Store.SeedFile)
}

// TestLoadFromConfigFile verifies that a config.yaml in the working directory
// is read and that environment variables still take precedence over it.
func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "server:\n  port: 7070\n  log_level: warn\nstore:\n  seed_enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	setupEnv(t, map[string]string{
		"TASKLIST_SERVER_PORT":        "",
		"TASKLIST_SERVER_LOG_LEVEL":   "error",
		"TASKLIST_STORE_SEED_ENABLED": "",
		"TASKLIST_STORE_SEED_FILE":    "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "Port should come from the config file")
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should override the config file")
	assert.False(t, cfg.Store.SeedEnabled)
}

// TestLoadValidationErrors verifies that Load validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"TASKLIST_SERVER_PORT": "999999",
			},
		},
		{
			name: "Zero port",
			envVars: map[string]string{
				"TASKLIST_SERVER_PORT": "0",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"TASKLIST_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Non-positive shutdown timeout",
			envVars: map[string]string{
				"TASKLIST_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "-1",
			},
		},
		{
			name: "Missing seed file",
			envVars: map[string]string{
				"TASKLIST_STORE_SEED_FILE": "/definitely/not/here/seed.toml",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

// chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory on cleanup (equivalent to testing.T.Chdir,
// which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
