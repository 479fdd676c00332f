package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GEOM_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("GEOM_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("GEOM_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	n, err := GetEnvInt("GEOM_TEST_MISSING", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("GEOM_TEST_INT", "42")
	n, err = GetEnvInt("GEOM_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	t.Setenv("GEOM_TEST_INT", "forty")
	_, err = GetEnvInt("GEOM_TEST_INT", 7)
	assert.ErrorContains(t, err, "GEOM_TEST_INT")
}

func TestViewerFromEnv(t *testing.T) {
	t.Setenv("GEOMVIEW_FPS", "")
	t.Setenv("GEOMVIEW_SCENE", "scene.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ViewerFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Viewer{ScenePath: "scene.yaml", FPS: defaultFPS, LogLevel: "debug"}, cfg)

	t.Setenv("GEOMVIEW_FPS", "0")
	_, err = ViewerFromEnv()
	assert.Error(t, err)
}

func TestSSHFromEnv(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")
	cfg := SSHFromEnv()
	assert.Equal(t, "2323", cfg.Port)
	assert.Equal(t, defaultHostKeyPath, cfg.HostKeyPath)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GEOM_DOTENV_A=from-file\nGEOM_DOTENV_B=from-file\n"), 0o600))

	t.Setenv("GEOM_DOTENV_B", "from-env")
	// registers cleanup so the loaded variable does not leak into other tests
	t.Setenv("GEOM_DOTENV_A", "")
	require.NoError(t, os.Unsetenv("GEOM_DOTENV_A"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("GEOM_DOTENV_A"))
	assert.Equal(t, "from-env", os.Getenv("GEOM_DOTENV_B"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "test", "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=1")

	_, err = NewLogger(&buf, "test", "loud")
	assert.Error(t, err)
}
