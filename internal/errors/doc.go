// Package errors provides typed error values for gitup.
//
// Sentinel errors let callers branch on specific conditions with errors.Is()
// instead of matching message text. Failures of external commands carry
// structured data and are matched with errors.As().
//
// # Error Categories
//
//   - Git errors: git is missing or a git invocation failed (ErrGitNotInstalled,
//     CommandLaunchError, CommandFailedError)
//   - Platform errors: no install advice could be derived (ErrPlatformDetectionFailed)
//   - Profile errors: profile lookups and preconditions (ErrProfileNotFound,
//     ErrIncompleteIdentity, ErrInvalidProfileName, ErrNoProfiles)
//   - Storage errors: the profile file (StorageError, ErrMalformedData,
//     ErrHomeDirectoryNotFound)
//   - Interaction errors: prompts (ErrOperationCancelled, ErrInteractionRequired)
//
// # Usage
//
// Wrap sentinels with context:
//
//	return fmt.Errorf("%w: %s", errors.ErrProfileNotFound, name)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, gerrors.ErrGitNotInstalled) {
//	    // print install advice
//	}
package errors
