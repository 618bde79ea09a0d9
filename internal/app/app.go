// Package app implements gitup's user-facing operations on top of the git
// identity store and the profile store.
package app

import (
	"fmt"
	"io"
	"strings"

	"gitup/internal/config"
	gerrors "gitup/internal/errors"
	"gitup/internal/logger"
	"gitup/internal/prompt"
	"gitup/internal/state"
	"gitup/internal/ui"
)

// IdentityStore is the live git identity, read and written as a whole.
type IdentityStore interface {
	IsInstalled() bool
	ReadIdentity() config.Identity
	WriteIdentity(id config.Identity) error
}

// App wires the stores to the prompter. Human-readable progress of
// interactive flows is written to Out.
type App struct {
	Git      IdentityStore
	Profiles *state.Store
	Prompter prompt.Prompter
	Out      io.Writer
}

// New returns an App over the given collaborators.
func New(git IdentityStore, profiles *state.Store, prompter prompt.Prompter, out io.Writer) *App {
	return &App{Git: git, Profiles: profiles, Prompter: prompter, Out: out}
}

// Status is the live identity together with the profile store it was read with.
type Status struct {
	Identity config.Identity
	Profiles *config.Profiles
}

// EnsureGit fails with ErrGitNotInstalled when git cannot be run.
func (a *App) EnsureGit() error {
	if !a.Git.IsInstalled() {
		return gerrors.ErrGitNotInstalled
	}
	return nil
}

// Check reads the live identity and the profile store without changing either.
func (a *App) Check() (*Status, error) {
	id := a.Git.ReadIdentity()
	profiles, err := a.Profiles.Load()
	if err != nil {
		return nil, err
	}
	return &Status{Identity: id, Profiles: profiles}, nil
}

// SetFields are the values supplied to Set. Nil means "not supplied".
type SetFields struct {
	Name       *string
	Email      *string
	SigningKey *string
}

// Set writes only the supplied fields. At least one field is required, and the
// check happens before git is touched.
//
// Signing state is always rewritten as one of its two outcomes, so when no key
// is supplied the live key is carried over to keep signing as it was. An empty
// supplied key turns signing off.
func (a *App) Set(fields SetFields) (*Status, error) {
	if fields.Name == nil && fields.Email == nil && fields.SigningKey == nil {
		return nil, gerrors.ErrNothingToSet
	}

	record := config.Identity{Name: fields.Name, Email: fields.Email, SigningKey: fields.SigningKey}
	if fields.SigningKey == nil {
		record.SigningKey = a.Git.ReadIdentity().SigningKey
	}

	logger.Debug("[DEBUG] Set: name=%t email=%t signingKey=%t\n", fields.Name != nil, fields.Email != nil, fields.SigningKey != nil)
	if err := a.Git.WriteIdentity(record.Normalized()); err != nil {
		return nil, err
	}

	return a.Check()
}

// Save stores the live identity as profile name. The live identity must have
// a non-empty name and email.
func (a *App) Save(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return gerrors.ErrInvalidProfileName
	}

	live := a.Git.ReadIdentity()
	if !live.IsComplete() {
		return fmt.Errorf("%w. Cannot save profile", gerrors.ErrIncompleteIdentity)
	}

	logger.Debug("[DEBUG] Saving profile %s to %s\n", name, a.Profiles.Path())
	return a.Profiles.SaveProfile(name, live)
}

// Use applies a saved profile and returns its name and identity.
// With an empty name, the profile is chosen through the Prompter when
// allowSelect is true; otherwise ErrNameRequired is returned.
func (a *App) Use(name string, allowSelect bool) (string, config.Identity, error) {
	if name == "" {
		if !allowSelect {
			return "", config.Identity{}, gerrors.ErrNameRequired
		}

		names, err := a.Profiles.ProfileNames()
		if err != nil {
			return "", config.Identity{}, err
		}
		if len(names) == 0 {
			return "", config.Identity{}, gerrors.ErrNoProfiles
		}

		name, err = a.Prompter.Select("Select a profile to use", names)
		if err != nil {
			return "", config.Identity{}, err
		}
	}

	id, err := a.Profiles.UseProfile(name, a.Git)
	if err != nil {
		return "", config.Identity{}, err
	}
	logger.Debug("[DEBUG] Switched to profile %s\n", name)
	return name, id, nil
}

// List returns the profile store.
func (a *App) List() (*config.Profiles, error) {
	return a.Profiles.Load()
}

// Current returns the profile store; its CurrentProfile is the active profile.
func (a *App) Current() (*config.Profiles, error) {
	return a.Profiles.Load()
}

// Delete removes profile name. With confirm set the user is asked first and a
// "no" leaves the store untouched, reported as deleted == false.
func (a *App) Delete(name string, confirm bool) (bool, error) {
	if confirm {
		ok, err := a.Prompter.Confirm(fmt.Sprintf("Are you sure you want to delete the profile '%s'?", name), false)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := a.Profiles.DeleteProfile(name); err != nil {
		return false, err
	}
	return true, nil
}

// SetupOptions controls the setup flow.
// - Interactive: prompting is allowed.
// - JSON: output is machine-readable, so no status is printed and no
// reconfigure or save-as-profile questions are asked.
type SetupOptions struct {
	Interactive bool
	JSON        bool
}

// SetupResult reports what setup did.
type SetupResult struct {
	Changed      bool
	SavedProfile string
	Status       *Status
}

// Setup guides the user to a complete identity and optionally saves it as a profile.
//
// Without interaction a complete live identity is re-applied as is and an
// incomplete one fails with ErrInteractionRequired.
func (a *App) Setup(opts SetupOptions) (*SetupResult, error) {
	current := a.Git.ReadIdentity()

	if !opts.Interactive {
		if !current.IsComplete() {
			return nil, gerrors.ErrInteractionRequired
		}
		logger.Info("[INFO] Re-applying the current git identity\n")
		if err := a.Git.WriteIdentity(current.Normalized()); err != nil {
			return nil, err
		}
		status, err := a.Check()
		if err != nil {
			return nil, err
		}
		return &SetupResult{Changed: true, Status: status}, nil
	}

	if !opts.JSON {
		profiles, err := a.Profiles.Load()
		if err != nil {
			return nil, err
		}
		ui.PrintStatus(a.Out, current, profiles)

		if !current.IsEmpty() {
			reconfigure, err := a.Prompter.Confirm("Git appears to be configured. Do you want to reconfigure it?", false)
			if err != nil {
				return nil, err
			}
			if !reconfigure {
				fmt.Fprintln(a.Out, "Configuration unchanged.")
				return &SetupResult{Status: &Status{Identity: current, Profiles: profiles}}, nil
			}
		}
	}

	next, err := a.collectIdentity(current)
	if err != nil {
		return nil, err
	}
	if err := a.Git.WriteIdentity(next); err != nil {
		return nil, err
	}

	result := &SetupResult{Changed: true}
	if !opts.JSON {
		ui.PrintSuccess(a.Out, "Git configuration has been updated.")
		profiles, err := a.Profiles.Load()
		if err != nil {
			return nil, err
		}
		ui.PrintStatus(a.Out, next, profiles)

		saved, err := a.offerSaveProfile()
		if err != nil {
			return nil, err
		}
		result.SavedProfile = saved
	}

	status, err := a.Check()
	if err != nil {
		return nil, err
	}
	result.Status = status
	return result, nil
}

// collectIdentity prompts for every field, defaulting to the current values.
func (a *App) collectIdentity(current config.Identity) (config.Identity, error) {
	name, err := a.Prompter.Input("Enter your Git user name", config.Value(current.Name))
	if err != nil {
		return config.Identity{}, err
	}
	email, err := a.Prompter.Input("Enter your Git email", config.Value(current.Email))
	if err != nil {
		return config.Identity{}, err
	}
	key, err := a.Prompter.OptionalInput("Enter your GPG/SSH signing key (optional)", config.Value(current.SigningKey))
	if err != nil {
		return config.Identity{}, err
	}

	next := config.Identity{Name: config.String(name), Email: config.String(email), SigningKey: config.String(key)}
	return next.Normalized(), nil
}

// offerSaveProfile asks whether to keep the new identity as a profile and
// returns the saved name, or "" when nothing was saved.
func (a *App) offerSaveProfile() (string, error) {
	save, err := a.Prompter.Confirm("Would you like to save this configuration as a profile for future use?", false)
	if err != nil || !save {
		return "", err
	}

	name, err := a.Prompter.OptionalInput("Enter a name for this profile (e.g., 'work', 'personal')", "")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		ui.PrintNotice(a.Out, "Info: Profile not saved due to empty name.")
		return "", nil
	}

	if err := a.Save(name); err != nil {
		return "", err
	}
	ui.PrintSuccess(a.Out, fmt.Sprintf("Profile '%s' saved successfully.", strings.TrimSpace(name)))
	return strings.TrimSpace(name), nil
}
