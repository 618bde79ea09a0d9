package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values from settings.yaml.
const (
	EnvGitBinary    = "GITUP_GIT_BINARY"
	EnvProfilesFile = "GITUP_PROFILES_FILE"
)

// DefaultGitBinary is the executable used when nothing else is configured.
const DefaultGitBinary = "git"

// LoadSettings reads gitup's settings.yaml and layers environment overrides on top.
// Resolution order for each field (later wins):
//  1. built-in defaults (git on PATH, profile file under the config dir)
//  2. settings file at configFile, if it exists
//  3. GITUP_* environment variables
//
// A missing settings file is not an error. A file that exists but cannot be
// parsed is, since silently ignoring it would apply the wrong identity store.
// home is the user's home directory; it is required to derive default paths.
func LoadSettings(configFile, home string) (Settings, error) {
	var settings Settings

	if configFile != "" {
		raw, err := os.ReadFile(configFile)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &settings); err != nil {
				return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", configFile, err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// No settings file yet, defaults apply.
		default:
			return Settings{}, fmt.Errorf("failed to read settings file %s: %w", configFile, err)
		}
	}

	if v := os.Getenv(EnvGitBinary); v != "" {
		settings.GitBinary = v
	}
	if v := os.Getenv(EnvProfilesFile); v != "" {
		settings.ProfilesFile = v
	}

	if settings.GitBinary == "" {
		settings.GitBinary = DefaultGitBinary
	}

	if settings.ProfilesFile == "" {
		path, err := DefaultProfilesPath(home)
		if err != nil {
			return Settings{}, err
		}
		settings.ProfilesFile = path
	} else {
		path, err := ExpandHome(settings.ProfilesFile, home)
		if err != nil {
			return Settings{}, err
		}
		settings.ProfilesFile = path
	}

	return settings, nil
}
