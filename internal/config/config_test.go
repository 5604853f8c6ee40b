package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.RaylibInfo)
	assert.Equal(t, 12000, cfg.Galaxy.Count)
	assert.Equal(t, 5, cfg.Galaxy.Arms)
	assert.InDelta(t, 0.55, cfg.Galaxy.Spread, 1e-12)
	assert.InDelta(t, 8.0, cfg.Galaxy.Radius, 1e-12)
	assert.InDelta(t, 0.6, cfg.Galaxy.Thickness, 1e-12)
	assert.Equal(t, DefaultPalette, cfg.Galaxy.Palette)
	assert.Equal(t, int64(0), cfg.Galaxy.Seed)

	assert.InDelta(t, 0.035, cfg.Motion.RotationSpeed, 1e-12)
	assert.InDelta(t, 2.8, cfg.Motion.MouseInfluence, 1e-12)

	assert.InDelta(t, 14.0, cfg.Camera.Radius, 1e-12)
	assert.InDelta(t, 6.0, cfg.Camera.Height, 1e-12)
	assert.InDelta(t, 0.08, cfg.Camera.OrbitRate, 1e-12)
	assert.InDelta(t, 0.035, cfg.Camera.Lerp, 1e-12)
	assert.InDelta(t, 60.0, cfg.Camera.FOV, 1e-12)
	assert.False(t, cfg.Camera.FrameRateIndependent)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.FPS)
	assert.False(t, cfg.Window.Wallpaper)
	assert.InDelta(t, 2.0, cfg.Window.MaxPixelRatio, 1e-12)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.json")
	cfg := `{
		"logLevel": "debug",
		"galaxy": { "count": 500, "seed": 42, "palette": ["#ff0000", "#00ff00"] },
		"camera": { "frameRateIndependent": true },
		"window": { "wallpaper": true }
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, 500, loaded.Galaxy.Count)
	assert.Equal(t, int64(42), loaded.Galaxy.Seed)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, loaded.Galaxy.Palette)
	assert.True(t, loaded.Camera.FrameRateIndependent)
	assert.True(t, loaded.Window.Wallpaper)

	// untouched keys keep their defaults
	assert.Equal(t, 5, loaded.Galaxy.Arms)
	assert.InDelta(t, 14.0, loaded.Camera.Radius, 1e-12)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GALAXY_GALAXY_COUNT", "64")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Galaxy.Count)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"galaxy": {"arms": 0, "palette": ["#12345"]}, "camera": {"lerp": 1.5}}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "galaxy.arms")
	assert.Contains(t, err.Error(), "camera.lerp")
	assert.Contains(t, err.Error(), "galaxy.palette")
}

func TestValidate_CameraAndCount(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Camera.Radius = 0
	cfg.Camera.Height = 0
	cfg.Galaxy.Count = 1 << 21
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera.radius and camera.height")
	assert.Contains(t, err.Error(), "galaxy.count")

	cfg.Camera.Height = 6
	cfg.Galaxy.Count = 1 << 20
	assert.NoError(t, cfg.Validate())
}

func TestLoad_RaylibInfoFromEnv(t *testing.T) {
	t.Setenv("GALAXY_RAYLIBINFO", "true")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.RaylibInfo)
}
