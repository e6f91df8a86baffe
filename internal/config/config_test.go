package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APIMODEL_LOG_LEVEL", "APIMODEL_MODEL", "APIMODEL_OUTPUT_FORMAT", "APIMODEL_STRICT", "APIMODEL_VALIDATE", "APIMODEL_MAX_BYTES", "APIMODEL_LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "List", cfg.Model)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Validate)
	assert.Zero(t, cfg.MaxBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APIMODEL_OUTPUT_FORMAT", "YAML")
	t.Setenv("APIMODEL_STRICT", "true")
	t.Setenv("APIMODEL_MAX_BYTES", "1024")
	t.Setenv("APIMODEL_VALIDATE", "not-a-bool")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Validate)
	assert.Equal(t, int64(1024), cfg.MaxBytes)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("APIMODEL_LOG_LEVEL", "")
	t.Setenv("APIMODEL_MODEL", "")
	os.Unsetenv("APIMODEL_LOG_LEVEL")
	os.Unsetenv("APIMODEL_MODEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APIMODEL_LOG_LEVEL=debug\nAPIMODEL_MODEL=Pet\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Pet", cfg.Model)
}
