// Package ui renders command results, either as colored text or as JSON envelopes.
package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gitup/internal/config"
	"gitup/internal/state"

	"github.com/fatih/color"
)

// Label and value colors used by the human-readable output.
var (
	heading = color.New(color.Bold, color.Underline).SprintFunc()
	setKey  = color.New(color.FgGreen).SprintFunc()
	unset   = color.New(color.FgYellow).SprintFunc()
	accent  = color.New(color.FgCyan).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	success = color.New(color.FgGreen, color.Bold).SprintFunc()
	failure = color.New(color.FgRed, color.Bold).SprintFunc()
	notice  = color.New(color.FgYellow).SprintFunc()
)

// Envelope is the JSON document printed in --json mode.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Envelope status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// StatusData is the payload describing the live identity and active profile.
type StatusData struct {
	IsGitInstalled bool            `json:"isGitInstalled"`
	Config         config.Identity `json:"config"`
	ActiveProfile  *string         `json:"activeProfile"`
}

// ActiveProfileData is the payload of `current`.
type ActiveProfileData struct {
	ActiveProfile *string `json:"activeProfile"`
}

// ProfileData names the profile a save or delete acted on.
type ProfileData struct {
	Profile string `json:"profile"`
}

// NotInstalledData is attached to the error envelope when git is missing.
type NotInstalledData struct {
	IsGitInstalled bool   `json:"isGitInstalled"`
	InstallAdvice  string `json:"installAdvice,omitempty"`
}

// WriteJSON prints env as indented JSON followed by a newline.
func WriteJSON(w io.Writer, env Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// OK builds a success envelope.
func OK(message string, data any) Envelope {
	return Envelope{Status: StatusOK, Message: message, Data: data}
}

// Failure builds an error envelope.
func Failure(message string, data any) Envelope {
	return Envelope{Status: StatusError, Message: message, Data: data}
}

// NewStatusData builds the status payload for id and the store's active profile.
func NewStatusData(id config.Identity, profiles *config.Profiles) StatusData {
	data := StatusData{IsGitInstalled: true, Config: id}
	if profiles != nil {
		data.ActiveProfile = profiles.CurrentProfile
	}
	return data
}

// PrintStatus prints the live identity and, when known, the active profile.
func PrintStatus(w io.Writer, id config.Identity, profiles *config.Profiles) {
	fmt.Fprintln(w, heading("Git Configuration Status"))
	printField(w, "Name", id.Name)
	printField(w, "Email", id.Email)
	if id.HasSigningKey() {
		fmt.Fprintf(w, "  %s: %s\n", setKey(pad("Signing Key")), *id.SigningKey)
	}
	if profiles != nil && profiles.CurrentProfile != nil {
		fmt.Fprintf(w, "  %s: %s (%s)\n", setKey(pad("Profile")), *profiles.CurrentProfile, accent("active"))
	}
}

// PrintProfiles prints the saved profile names, sorted, marking the active one.
func PrintProfiles(w io.Writer, profiles *config.Profiles) {
	fmt.Fprintln(w, heading("Saved Profiles"))
	if len(profiles.Profiles) == 0 {
		fmt.Fprintln(w, "  No profiles saved.")
		return
	}

	for _, name := range state.SortedNames(profiles) {
		if profiles.IsActive(name) {
			fmt.Fprintf(w, "  - %s (%s)\n", bold(name), accent("active"))
		} else {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}
}

// PrintActiveProfile prints the current profile name or a note that none is active.
func PrintActiveProfile(w io.Writer, profiles *config.Profiles) {
	if profiles.CurrentProfile == nil {
		fmt.Fprintln(w, "No profile is currently active.")
		return
	}
	fmt.Fprintf(w, "Active profile: %s\n", accent(*profiles.CurrentProfile))
}

// PrintSuccess prints a highlighted success line.
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", success("Success:"), message)
}

// PrintNotice prints an informational line in yellow.
func PrintNotice(w io.Writer, message string) {
	fmt.Fprintln(w, notice(message))
}

// PrintError prints a short highlighted error line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", failure("Error"), err)
}

// PrintNotInstalled prints the not-installed banner and the command that fixes it.
func PrintNotInstalled(w io.Writer, installAdvice string) {
	fmt.Fprintln(w, failure("Git is not installed."))
	if installAdvice == "" {
		return
	}
	fmt.Fprintln(w, "To install it, please run the following command:")
	fmt.Fprintf(w, "\n  %s\n\n", accent(installAdvice))
}

func printField(w io.Writer, label string, value *string) {
	if v := config.Value(value); v != "" {
		fmt.Fprintf(w, "  %s: %s\n", setKey(pad(label)), v)
		return
	}
	fmt.Fprintf(w, "  %s: Not Set\n", unset(pad(label)))
}

func pad(label string) string {
	return fmt.Sprintf("%-12s", label)
}
