package config

import (
	"os"
	"path/filepath"
	"strings"

	gerrors "gitup/internal/errors"
)

// File and directory names under the config directory.
const (
	AppDirName       = "gitup"
	ProfilesFileName = "config.json"
	SettingsFileName = "settings.yaml"
)

// ConfigDir returns the gitup configuration directory.
// It honors XDG_CONFIG_HOME and otherwise uses ~/.config on every platform,
// so the same profile file is found on Linux, macOS and Windows.
func ConfigDir(home string) (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, AppDirName), nil
	}
	if home == "" {
		return "", gerrors.ErrHomeDirectoryNotFound
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// DefaultProfilesPath returns the default location of the profile store document.
func DefaultProfilesPath(home string) (string, error) {
	dir, err := ConfigDir(home)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProfilesFileName), nil
}

// DefaultSettingsPath returns the default location of settings.yaml.
func DefaultSettingsPath(home string) (string, error) {
	dir, err := ConfigDir(home)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// ExpandHome replaces a leading "~/" (or a bare "~") with home.
func ExpandHome(path, home string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if home == "" {
		return "", gerrors.ErrHomeDirectoryNotFound
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
