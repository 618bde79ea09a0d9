package state

import (
	"encoding/json" // For JSON encoding and decoding of the profile file
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"gitup/internal/config"
	gerrors "gitup/internal/errors"
	"gitup/internal/logger" // Custom logger package for debug info

	"github.com/spf13/afero"
)

// IdentityWriter applies an identity to the live git configuration.
type IdentityWriter interface {
	WriteIdentity(id config.Identity) error
}

// Store persists the profile document at a single path on a filesystem.
// The filesystem is injected so tests can run against afero.NewMemMapFs().
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a Store for the profile file at path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the profile file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile document.
// If the file does not exist yet it returns an empty store, not an error.
// Malformed content is reported as errors.ErrMalformedData and never discarded.
func (s *Store) Load() (*config.Profiles, error) {
	// Read entire profile JSON file into memory
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("[DEBUG] No profile file at %s, starting empty\n", s.path)
			return config.NewProfiles(), nil
		}
		return nil, &gerrors.StorageError{Op: "read", Path: s.path, Err: err}
	}

	// Parse JSON data into a Profiles struct
	var profiles config.Profiles
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gerrors.ErrMalformedData, s.path, err)
	}

	// Ensure the map is initialized if JSON omitted it or contained null
	if profiles.Profiles == nil {
		profiles.Profiles = make(map[string]config.Identity)
	}

	return &profiles, nil
}

// Save writes the whole document, creating the parent directory first.
// It pretty-prints the JSON with indentation for readability.
func (s *Store) Save(profiles *config.Profiles) error {
	if profiles.Profiles == nil {
		profiles.Profiles = make(map[string]config.Identity)
	}

	// Marshal the Profiles struct into indented JSON bytes
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &gerrors.StorageError{Op: "write", Path: s.path, Err: err}
	}

	logger.Debug("[DEBUG] Writing profiles to %s:\n%s\n", s.path, string(data))

	// Write the JSON bytes to the file with mode 0644 (read/write owner, read others)
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return &gerrors.StorageError{Op: "write", Path: s.path, Err: err}
	}

	return nil
}

// SaveProfile stores id under name, replacing any profile with that name.
func (s *Store) SaveProfile(name string, id config.Identity) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}

	profiles.Profiles[name] = id.Normalized()
	return s.Save(profiles)
}

// UseProfile applies the profile name through writer and records it as current.
// The current-profile pointer is persisted only after writer succeeded, so it
// never names a profile whose identity was not applied.
func (s *Store) UseProfile(name string, writer IdentityWriter) (config.Identity, error) {
	profiles, err := s.Load()
	if err != nil {
		return config.Identity{}, err
	}

	id, ok := profiles.Profiles[name]
	if !ok {
		return config.Identity{}, fmt.Errorf("%w: '%s'", gerrors.ErrProfileNotFound, name)
	}
	id = id.Normalized()

	if err := writer.WriteIdentity(id); err != nil {
		return config.Identity{}, fmt.Errorf("applying profile '%s': %w", name, err)
	}

	profiles.CurrentProfile = config.String(name)
	if err := s.Save(profiles); err != nil {
		return config.Identity{}, err
	}

	return id, nil
}

// DeleteProfile removes name from the store and clears the current-profile
// pointer if it referenced name. The live git configuration is not touched.
func (s *Store) DeleteProfile(name string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}

	if _, ok := profiles.Profiles[name]; !ok {
		return fmt.Errorf("%w: '%s'", gerrors.ErrProfileNotFound, name)
	}

	delete(profiles.Profiles, name)
	if profiles.IsActive(name) {
		profiles.CurrentProfile = nil
	}

	return s.Save(profiles)
}

// ProfileNames returns the saved profile names in sorted order.
func (s *Store) ProfileNames() ([]string, error) {
	profiles, err := s.Load()
	if err != nil {
		return nil, err
	}
	return SortedNames(profiles), nil
}

// SortedNames returns the keys of profiles.Profiles in sorted order.
func SortedNames(profiles *config.Profiles) []string {
	names := make([]string, 0, len(profiles.Profiles))
	for name := range profiles.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
