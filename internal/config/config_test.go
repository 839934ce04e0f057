package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/dino-compare/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: dev
dataset_path: static/dino.json
http_server:
  address: localhost:8082
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "static/dino.json", cfg.DatasetPath)
	assert.Equal(t, "localhost:8082", cfg.Addr)
	assert.Equal(t, "static/images", cfg.ImagesDir)
	assert.Empty(t, cfg.StoragePath)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: dev
dataset_path: static/dino.json
seed: 3
http_server:
  address: localhost:8082
`)
	t.Setenv("RANDOM_SEED", "99")
	t.Setenv("HTTP_SERVER_ADDR", ":9000")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrNoPath)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "does not exist")

	path := writeConfig(t, "env: dev\n")
	_, err = config.Load(path)
	assert.Error(t, err, "missing required fields")
}

func TestPathPrefersEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "flag.yaml", config.Path("flag.yaml"))

	t.Setenv("CONFIG_PATH", "env.yaml")
	assert.Equal(t, "env.yaml", config.Path("flag.yaml"))
}
