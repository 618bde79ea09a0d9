// Package gitconfig reads and writes the git identity kept in git's global configuration.
package gitconfig

import (
	"fmt"

	"gitup/internal/config"
	"gitup/internal/installer"
	"gitup/internal/logger"
)

// Keys of git's global configuration managed by gitup.
const (
	KeyUserName       = "user.name"
	KeyUserEmail      = "user.email"
	KeyUserSigningKey = "user.signingkey"
	KeyCommitGPGSign  = "commit.gpgsign"
)

// Store is the identity adapter over `git config --global`.
type Store struct {
	runner installer.Runner
	git    string
}

// NewStore returns a Store invoking the git executable named by git through runner.
func NewStore(runner installer.Runner, git string) *Store {
	if git == "" {
		git = config.DefaultGitBinary
	}
	return &Store{runner: runner, git: git}
}

// IsInstalled reports whether `git --version` runs successfully.
func (s *Store) IsInstalled() bool {
	_, err := s.runner.Run(s.git, "--version")
	return err == nil
}

// ReadIdentity queries user.name, user.email and user.signingkey independently.
// An unset key (git exits 1) or any other failure leaves that field nil; the
// read as a whole never fails.
func (s *Store) ReadIdentity() config.Identity {
	return config.Identity{
		Name:       s.get(KeyUserName),
		Email:      s.get(KeyUserEmail),
		SigningKey: s.get(KeyUserSigningKey),
	}
}

// WriteIdentity applies id to the global configuration.
//
// Name and email are written only when present. Signing has exactly two outcomes:
//   - non-empty key: user.signingkey = key, then commit.gpgsign = true
//   - no key: user.signingkey is unset (ignored if it was never set), then commit.gpgsign = false
//
// Steps run in order and stop at the first failure. Already applied steps are
// not rolled back.
func (s *Store) WriteIdentity(id config.Identity) error {
	if id.Name != nil {
		if err := s.set(KeyUserName, *id.Name); err != nil {
			return err
		}
	}
	if id.Email != nil {
		if err := s.set(KeyUserEmail, *id.Email); err != nil {
			return err
		}
	}

	if id.HasSigningKey() {
		return s.enableSigning(*id.SigningKey)
	}
	return s.disableSigning()
}

func (s *Store) enableSigning(key string) error {
	if err := s.set(KeyUserSigningKey, key); err != nil {
		return err
	}
	return s.set(KeyCommitGPGSign, "true")
}

func (s *Store) disableSigning() error {
	if _, err := s.runner.Run(s.git, "config", "--global", "--unset-all", KeyUserSigningKey); err != nil {
		logger.Debug("[DEBUG] Ignoring failure to unset %s: %v\n", KeyUserSigningKey, err)
	}
	return s.set(KeyCommitGPGSign, "false")
}

func (s *Store) get(key string) *string {
	value, err := s.runner.Run(s.git, "config", "--global", key)
	if err != nil {
		logger.Debug("[DEBUG] %s is not set: %v\n", key, err)
		return nil
	}
	return &value
}

func (s *Store) set(key, value string) error {
	if _, err := s.runner.Run(s.git, "config", "--global", key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
