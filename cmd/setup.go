package cmd

import (
	"gitup/internal/app"
	"gitup/internal/logger"

	"github.com/spf13/cobra"
)

// nonInteractive disables every prompt of setup.
var nonInteractive bool

// setupCmd walks the user through configuring name, email and signing key.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Guides you through the Git setup process",
	Long: `Guides you through configuring your global git identity.

The current values are offered as defaults. Leaving the signing key empty
disables commit signing. Once applied, the identity can be saved as a profile.

With --non-interactive, or when stdin is not a terminal, no questions are
asked: a complete identity is re-applied as it is and an incomplete one is an
error (use 'gitup set' instead).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := !nonInteractive
		if interactive && !stdinIsTerminal() {
			logger.Warn("[WARN] stdin is not a terminal, running setup non-interactively\n")
			interactive = false
		}

		result, err := application.Setup(app.SetupOptions{
			Interactive: interactive,
			JSON:        jsonOutput,
		})
		if err != nil {
			return err
		}

		// Interactive human output is printed while the flow runs
		if jsonOutput {
			return printStatus(cmd, result.Status, "")
		}
		if !interactive {
			return printStatus(cmd, result.Status, "Git configuration has been updated.")
		}
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Run non-interactively, fails if input is required")
	rootCmd.AddCommand(setupCmd)
}
