package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Git errors indicate git is unavailable or one of its invocations failed.
var (
	// ErrGitNotInstalled indicates the git binary could not be run.
	ErrGitNotInstalled = errors.New("git is not installed on this system")
)

// Platform errors indicate no install command could be recommended.
var (
	// ErrPlatformDetectionFailed indicates neither the OS nor a known package manager matched.
	ErrPlatformDetectionFailed = errors.New("could not detect the operating system or package manager")
)

// Profile errors indicate issues with saved profiles or the identity being saved.
var (
	// ErrProfileNotFound indicates the named profile is not in the store.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoProfiles indicates there are no profiles to choose from.
	ErrNoProfiles = errors.New("no profiles exist to choose from")

	// ErrInvalidProfileName indicates an empty profile name.
	ErrInvalidProfileName = errors.New("profile name cannot be empty")

	// ErrIncompleteIdentity indicates the live identity lacks a name or an email.
	ErrIncompleteIdentity = errors.New("current git config is incomplete (name or email is missing)")

	// ErrNothingToSet indicates set was called without any field.
	ErrNothingToSet = errors.New("nothing to set: provide --name, --email or --signing-key")

	// ErrNameRequired indicates a profile name must be given on the command line.
	ErrNameRequired = errors.New("a profile name is required when using --json output")
)

// Storage errors indicate issues with the profile file.
var (
	// ErrMalformedData indicates the profile file could not be decoded.
	ErrMalformedData = errors.New("failed to deserialize configuration")

	// ErrHomeDirectoryNotFound indicates the user's home directory is unknown.
	ErrHomeDirectoryNotFound = errors.New("could not find the home directory for the current user")
)

// Interaction errors indicate prompts were aborted or not possible.
var (
	// ErrOperationCancelled indicates the user aborted a prompt.
	ErrOperationCancelled = errors.New("user cancelled the operation")

	// ErrInteractionRequired indicates input is needed but prompting is disabled.
	ErrInteractionRequired = errors.New("interactive input is required; provide values via the 'set' command")
)

// CommandLaunchError reports an external program that could not be started.
type CommandLaunchError struct {
	Command string
	Err     error
}

func (e *CommandLaunchError) Error() string {
	return fmt.Sprintf("failed to execute command '%s': %v", e.Command, e.Err)
}

func (e *CommandLaunchError) Unwrap() error {
	return e.Err
}

// CommandFailedError reports an external program that ran and exited non-zero.
type CommandFailedError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *CommandFailedError) Error() string {
	msg := fmt.Sprintf("command '%s' failed with exit code %d", e.Command, e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// StorageError reports a failed read or write of the profile file.
type StorageError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s the gitup configuration file %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
