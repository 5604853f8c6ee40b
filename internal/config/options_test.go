package config

import (
	"testing"

	"galaxy-wallpaper/internal/animation"
	"galaxy-wallpaper/internal/camera"
	"galaxy-wallpaper/internal/galaxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_DefaultsMatchComponents(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	gen := cfg.GeneratorOptions()
	want := galaxy.DefaultGeneratorOptions()
	assert.Equal(t, want.Count, gen.Count)
	assert.Equal(t, want.Arms, gen.Arms)
	assert.InDelta(t, want.Spread, gen.Spread, 1e-12)
	assert.InDelta(t, want.Radius, gen.Radius, 1e-12)
	assert.InDelta(t, want.Thickness, gen.Thickness, 1e-12)
	assert.Equal(t, want.Palette, gen.Palette)

	assert.Equal(t, camera.DefaultOptions(), cfg.CameraOptions())

	frame := cfg.FrameOptions(1280, 720, 1)
	defaults := animation.DefaultFrameOptions()
	assert.InDelta(t, defaults.RotationSpeed, frame.RotationSpeed, 1e-12)
	assert.InDelta(t, defaults.FOV, frame.FOV, 1e-12)
	assert.InDelta(t, defaults.MaxPixelRatio, frame.MaxPixelRatio, 1e-12)
}

func TestFrameOptions_CarriesViewport(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Camera.FrameRateIndependent = true

	opts := cfg.FrameOptions(800, 600, 1.5)
	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 600, opts.Height)
	assert.InDelta(t, 1.5, opts.PixelRatio, 1e-12)
	assert.True(t, opts.Camera.FrameRateIndependent)
}

func TestGeneratorOptions_BadPaletteFallsBack(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Galaxy.Palette = []string{"nope"}

	assert.Equal(t, galaxy.DefaultPalette(), cfg.GeneratorOptions().Palette)
}
