package utils

import (
	"os"
	"path/filepath"
)

const appName = "galaxy-wallpaper"

var configExtensions = []string{".json", ".toml", ".yaml", ".yml"}

// ConfigSearchDirs lists where a config file is looked for, in order: the
// working directory, then $XDG_CONFIG_HOME (or ~/.config) under the app name.
func ConfigSearchDirs() []string {
	dirs := []string{"."}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, appName))
	}
	return dirs
}

// ResolveConfigPath returns explicit when set. Otherwise it returns the first
// existing galaxy.* file in the working directory or config.* file in the
// user config directory, or "" to run on defaults.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for i, dir := range ConfigSearchDirs() {
		base := "config"
		if i == 0 {
			base = "galaxy"
		}
		for _, ext := range configExtensions {
			p := filepath.Join(dir, base+ext)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				Debug("Config: using %s", p)
				return p
			}
		}
	}
	return ""
}
