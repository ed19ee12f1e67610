package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where app keeps its store and log, following XDG_DATA_HOME.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"), app)
}

// ConfigDir is where app looks for its config file, following XDG_CONFIG_HOME.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", ".config", app)
}

func xdgDir(env, homeRel, app string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, homeRel, app)
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return strings.ReplaceAll(path, "$HOME", "")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
