package config

import (
	"galaxy-wallpaper/internal/animation"
	"galaxy-wallpaper/internal/camera"
	"galaxy-wallpaper/internal/galaxy"
)

// GeneratorOptions converts the galaxy section. The palette was checked by
// Validate; an unparsable one falls back to the default colours.
func (c *Config) GeneratorOptions() galaxy.GeneratorOptions {
	palette, err := galaxy.ParsePalette(c.Galaxy.Palette)
	if err != nil || len(palette) == 0 {
		palette = galaxy.DefaultPalette()
	}
	return galaxy.GeneratorOptions{
		Count:     c.Galaxy.Count,
		Arms:      c.Galaxy.Arms,
		Spread:    c.Galaxy.Spread,
		Radius:    c.Galaxy.Radius,
		Thickness: c.Galaxy.Thickness,
		Palette:   palette,
	}
}

func (c *Config) CameraOptions() camera.Options {
	return camera.Options{
		Radius:               c.Camera.Radius,
		Height:               c.Camera.Height,
		OrbitRate:            c.Camera.OrbitRate,
		Lerp:                 c.Camera.Lerp,
		FrameRateIndependent: c.Camera.FrameRateIndependent,
	}
}

// FrameOptions builds the kernel state options for a window of the given
// logical size and device pixel ratio.
func (c *Config) FrameOptions(width, height int, devicePixelRatio float64) animation.FrameOptions {
	return animation.FrameOptions{
		RotationSpeed: c.Motion.RotationSpeed,
		FOV:           c.Camera.FOV,
		Camera:        c.CameraOptions(),
		Width:         width,
		Height:        height,
		PixelRatio:    devicePixelRatio,
		MaxPixelRatio: c.Window.MaxPixelRatio,
	}
}
