package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration that never binds a fixed port.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			ShutdownTimeoutSeconds: 5,
		},
		Store: config.StoreConfig{SeedEnabled: true},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) (*application, *logger.TestLogBuffer) {
	t.Helper()

	buf, l := logger.NewTestLogger(t)
	app, err := newApplication(cfg, l)
	require.NoError(t, err)
	return app, buf
}

func TestNewApplication_SeedsEmbeddedDataset(t *testing.T) {
	app, buf := newTestApplication(t, testConfig())

	tasks, err := app.taskService.ListTasks(context.Background(), "user1")
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	logger.AssertLogContains(t, buf, `"source":"embedded"`)
}

func TestNewApplication_SeedingDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Store.SeedEnabled = false
	app, _ := newTestApplication(t, cfg)

	_, err := app.taskService.ListTasks(context.Background(), "user1")
	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}

func TestNewApplication_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	doc := "[[users]]\nid = \"dana\"\n[[users.tasks]]\nid = 1\ndescription = \"Ship it\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg := testConfig()
	cfg.Store.SeedFile = path
	app, buf := newTestApplication(t, cfg)

	ctx := context.Background()
	tasks, err := app.taskService.ListTasks(ctx, "dana")
	require.NoError(t, err)
	assert.Equal(t, "Ship it", tasks[0].Description)

	_, err = app.taskService.ListTasks(ctx, "user1")
	assert.True(t, errors.Is(err, store.ErrUserNotFound), "file seed replaces the embedded dataset")
	logger.AssertLogContains(t, buf, `"source":"file"`)
}

func TestNewApplication_Errors(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		app, err := newApplication(nil, nil)
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("broken seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.toml")
		require.NoError(t, os.WriteFile(path, []byte("[[users]\n"), 0o600))

		cfg := testConfig()
		cfg.Store.SeedFile = path
		_, l := logger.NewTestLogger(t)

		app, err := newApplication(cfg, l)
		require.Error(t, err)
		assert.Nil(t, app)
		assert.Contains(t, err.Error(), "failed to load file seed data")
	})
}
