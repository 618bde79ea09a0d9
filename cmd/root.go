package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gitup/internal/app"
	"gitup/internal/config"
	gerrors "gitup/internal/errors"
	"gitup/internal/gitconfig"
	"gitup/internal/installer"
	"gitup/internal/logger"
	"gitup/internal/prompt"
	"gitup/internal/state"
	"gitup/internal/ui"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags shared by every subcommand.
var (
	// debug enables debug logging of git invocations and profile writes.
	debug bool
	// jsonOutput switches every command to machine-readable envelopes.
	jsonOutput bool
	// configPath is the settings.yaml location; empty means the default under the config dir.
	configPath string
)

// noGitCheck marks commands that run without git being installed.
const noGitCheck = "gitup/no-git-check"

// application is the App built for the running command in PersistentPreRunE.
var application *app.App

// newApp builds the App from settings. Tests replace it to inject fakes.
var newApp = func(out io.Writer) (*app.App, error) {
	home := xdg.Home

	settingsPath := configPath
	if settingsPath == "" {
		path, err := config.DefaultSettingsPath(home)
		if err != nil {
			return nil, err
		}
		settingsPath = path
	}

	settings, err := config.LoadSettings(settingsPath, home)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Using git binary %q and profile file %s\n", settings.GitBinary, settings.ProfilesFile)

	git := gitconfig.NewStore(installer.ExecRunner{}, settings.GitBinary)
	profiles := state.NewStore(afero.NewOsFs(), settings.ProfilesFile)
	return app.New(git, profiles, prompt.NewPromptUI(), out), nil
}

// resolver supplies install advice when git is missing.
var resolver = installer.NewResolver()

// stdinIsTerminal reports whether prompts can be shown.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// rootCmd is the base command for the CLI tool `gitup`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "gitup",
	Short: "Manage your global git identity and switch between profiles",
	Long: `gitup reads and writes the identity in git's global configuration
(user.name, user.email, user.signingkey and commit.gpgsign) and keeps named
profiles so you can switch between identities such as "work" and "personal".`,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRunE runs before any subcommand: it initializes logging,
	// builds the App and makes sure git is available.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debug, cmd.ErrOrStderr())
		if cmd.Annotations[noGitCheck] == "true" {
			return nil
		}

		a, err := newApp(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		application = a

		return application.EnsureGit()
	},
}

// Execute initializes flags, registers subcommands, and starts the command execution.
// It's the entry point for the CLI when invoked by the user. Any failure is
// reported once, as JSON or as a highlighted line, and the process exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// reportError renders err for the selected output mode.
func reportError(w io.Writer, err error) {
	if errors.Is(err, gerrors.ErrGitNotInstalled) {
		advice, adviceErr := resolver.ResolveInstallAdvice(runtime.GOOS)
		if jsonOutput {
			_ = ui.WriteJSON(w, ui.Failure("Git is not installed.", ui.NotInstalledData{IsGitInstalled: false, InstallAdvice: advice}))
			return
		}
		ui.PrintNotInstalled(w, advice)
		if adviceErr != nil {
			ui.PrintError(w, adviceErr)
		}
		return
	}

	if jsonOutput {
		if writeErr := ui.WriteJSON(w, ui.Failure(err.Error(), nil)); writeErr != nil {
			logger.Error("[ERROR] %v: %v\n", writeErr, err)
		}
		return
	}
	ui.PrintError(w, err)
}

// printStatus renders a live identity with its store, preceded by message in human mode.
func printStatus(cmd *cobra.Command, status *app.Status, message string) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return ui.WriteJSON(out, ui.OK("", ui.NewStatusData(status.Identity, status.Profiles)))
	}
	if message != "" {
		ui.PrintSuccess(out, message)
	}
	ui.PrintStatus(out, status.Identity, status.Profiles)
	return nil
}

// printMessage renders a plain success message and its payload.
func printMessage(cmd *cobra.Command, jsonMessage, humanMessage string, data any) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return ui.WriteJSON(out, ui.OK(jsonMessage, data))
	}
	ui.PrintSuccess(out, humanMessage)
	return nil
}

func init() {
	// Register the global flags before any command is executed.
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", fmt.Sprintf("Path to settings file (default %s)", defaultSettingsHint()))
}

// defaultSettingsHint describes the default settings location for --help.
func defaultSettingsHint() string {
	path, err := config.DefaultSettingsPath(xdg.Home)
	if err != nil {
		return "~/.config/gitup/" + config.SettingsFileName
	}
	return path
}
