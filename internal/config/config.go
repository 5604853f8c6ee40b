package config

import (
	"errors"
	"fmt"
	"strings"

	"galaxy-wallpaper/internal/galaxy"

	"github.com/spf13/viper"
)

// GalaxyConfig holds the particle field generation settings.
type GalaxyConfig struct {
	Count     int      `mapstructure:"count"`
	Arms      int      `mapstructure:"arms"`
	Spread    float64  `mapstructure:"spread"`
	Radius    float64  `mapstructure:"radius"`
	Thickness float64  `mapstructure:"thickness"`
	Palette   []string `mapstructure:"palette"`
	Seed      int64    `mapstructure:"seed"`
}

// MotionConfig holds the per-frame animation rates.
type MotionConfig struct {
	RotationSpeed  float64 `mapstructure:"rotationSpeed"`
	MouseInfluence float64 `mapstructure:"mouseInfluence"`
}

// CameraConfig holds the orbit camera settings.
type CameraConfig struct {
	Radius               float64 `mapstructure:"radius"`
	Height               float64 `mapstructure:"height"`
	OrbitRate            float64 `mapstructure:"orbitRate"`
	Lerp                 float64 `mapstructure:"lerp"`
	FOV                  float64 `mapstructure:"fov"`
	FrameRateIndependent bool    `mapstructure:"frameRateIndependent"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	FPS           int     `mapstructure:"fps"`
	Title         string  `mapstructure:"title"`
	Wallpaper     bool    `mapstructure:"wallpaper"`
	MaxPixelRatio float64 `mapstructure:"maxPixelRatio"`
}

type Config struct {
	LogLevel   string       `mapstructure:"logLevel"`
	RaylibInfo bool         `mapstructure:"raylibInfo"`
	Galaxy     GalaxyConfig `mapstructure:"galaxy"`
	Motion     MotionConfig `mapstructure:"motion"`
	Camera     CameraConfig `mapstructure:"camera"`
	Window     WindowConfig `mapstructure:"window"`
}

var DefaultPalette = galaxy.DefaultPaletteHex

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "warn")
	v.SetDefault("raylibInfo", false)

	v.SetDefault("galaxy.count", 12000)
	v.SetDefault("galaxy.arms", 5)
	v.SetDefault("galaxy.spread", 0.55)
	v.SetDefault("galaxy.radius", 8.0)
	v.SetDefault("galaxy.thickness", 0.6)
	v.SetDefault("galaxy.palette", DefaultPalette)
	v.SetDefault("galaxy.seed", 0)

	v.SetDefault("motion.rotationSpeed", 0.035)
	v.SetDefault("motion.mouseInfluence", 2.8)

	v.SetDefault("camera.radius", 14.0)
	v.SetDefault("camera.height", 6.0)
	v.SetDefault("camera.orbitRate", 0.08)
	v.SetDefault("camera.lerp", 0.035)
	v.SetDefault("camera.fov", 60.0)
	v.SetDefault("camera.frameRateIndependent", false)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fps", 60)
	v.SetDefault("window.title", "Galaxy Wallpaper")
	v.SetDefault("window.wallpaper", false)
	v.SetDefault("window.maxPixelRatio", 2.0)
}

// Load reads configuration from path, if given, on top of the defaults.
// Environment variables prefixed with GALAXY_ override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("galaxy")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if c.Galaxy.Count < 0 || c.Galaxy.Count > galaxy.MaxParticles {
		errs = append(errs, fmt.Errorf("galaxy.count must be in [0, %d], got %d", galaxy.MaxParticles, c.Galaxy.Count))
	}
	if c.Galaxy.Arms < 1 {
		errs = append(errs, fmt.Errorf("galaxy.arms must be at least 1, got %d", c.Galaxy.Arms))
	}
	if c.Galaxy.Radius <= 0 {
		errs = append(errs, fmt.Errorf("galaxy.radius must be positive, got %g", c.Galaxy.Radius))
	}
	if _, err := galaxy.ParsePalette(c.Galaxy.Palette); err != nil {
		errs = append(errs, fmt.Errorf("galaxy.palette: %w", err))
	}
	if c.Camera.Radius == 0 && c.Camera.Height == 0 {
		errs = append(errs, errors.New("camera.radius and camera.height must not both be zero"))
	}
	if c.Camera.Lerp <= 0 || c.Camera.Lerp > 1 {
		errs = append(errs, fmt.Errorf("camera.lerp must be in (0, 1], got %g", c.Camera.Lerp))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.MaxPixelRatio < 1 {
		errs = append(errs, fmt.Errorf("window.maxPixelRatio must be at least 1, got %g", c.Window.MaxPixelRatio))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
