package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Server.Features)
	assert.Equal(t, "mhr-catalog", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "data", cfg.Pipeline.OutputDir)
	assert.Equal(t, "local", cfg.Pipeline.Source)
	assert.Equal(t, 300, cfg.Pipeline.CacheTTLSeconds)
	assert.Equal(t, "equip_skill.param", cfg.Pipeline.Sections.Skills)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("PIPELINE_OUTPUT_DIR", "out")
	t.Setenv("PIPELINE_SECTIONS_SKILLS", "skills.param")
	t.Setenv("SERVER_FEATURES", "catalog,integrity")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Pipeline.OutputDir)
	assert.Equal(t, "skills.param", cfg.Pipeline.Sections.Skills)
	assert.Equal(t, []string{"catalog", "integrity"}, cfg.Server.Features)
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PIPELINE_SOURCE=bucket\nLOG_LEVEL=debug\n"), 0o644))
	t.Setenv("PIPELINE_SOURCE", "local")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "bucket", cfg.Pipeline.Source)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	t.Setenv("PIPELINE_SOURCE", "ftp")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "ftp")
}
