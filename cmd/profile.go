package cmd

import (
	"fmt"

	"gitup/internal/ui"

	"github.com/spf13/cobra"
)

// forceDelete skips the delete confirmation.
var forceDelete bool

// saveCmd stores the live identity under a name.
var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Saves the current Git configuration as a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := application.Save(name); err != nil {
			return err
		}
		return printMessage(cmd,
			fmt.Sprintf("Profile '%s' saved.", name),
			fmt.Sprintf("Profile '%s' saved successfully.", name),
			ui.ProfileData{Profile: name})
	},
}

// useCmd applies a saved profile to the global git configuration.
var useCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Switches to a saved profile",
	Long: `Applies a saved profile to the global git configuration and marks it active.

Without a name the profile is chosen from a list. In --json mode the name is required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}

		name, id, err := application.Use(name, !jsonOutput)
		if err != nil {
			return err
		}

		if jsonOutput {
			return ui.WriteJSON(cmd.OutOrStdout(), ui.OK(fmt.Sprintf("Switched to profile '%s'.", name), ui.StatusData{
				IsGitInstalled: true,
				Config:         id,
				ActiveProfile:  &name,
			}))
		}
		ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Switched to profile '%s'.", name))
		status, err := application.Check()
		if err != nil {
			return err
		}
		ui.PrintStatus(cmd.OutOrStdout(), status.Identity, status.Profiles)
		return nil
	},
}

// listCmd prints every saved profile.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Lists all saved profiles",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := application.List()
		if err != nil {
			return err
		}
		if jsonOutput {
			return ui.WriteJSON(cmd.OutOrStdout(), ui.OK("", profiles))
		}
		ui.PrintProfiles(cmd.OutOrStdout(), profiles)
		return nil
	},
}

// currentCmd prints the active profile name.
var currentCmd = &cobra.Command{
	Use:     "current",
	Aliases: []string{"active"},
	Short:   "Shows the currently active profile",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := application.Current()
		if err != nil {
			return err
		}
		if jsonOutput {
			return ui.WriteJSON(cmd.OutOrStdout(), ui.OK("", ui.ActiveProfileData{ActiveProfile: profiles.CurrentProfile}))
		}
		ui.PrintActiveProfile(cmd.OutOrStdout(), profiles)
		return nil
	},
}

// deleteCmd removes a saved profile, asking first unless forced.
var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Deletes a saved profile",
	Long: `Deletes a saved profile. The global git configuration is not changed.

You are asked to confirm unless --force or --json is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		deleted, err := application.Delete(name, !forceDelete && !jsonOutput)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
		return printMessage(cmd,
			fmt.Sprintf("Profile '%s' deleted.", name),
			fmt.Sprintf("Profile '%s' has been deleted.", name),
			ui.ProfileData{Profile: name})
	},
}

// completeProfileNames offers saved profile names for shell completion.
// Completion bypasses PersistentPreRunE, so the App is built here.
func completeProfileNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := a.Profiles.ProfileNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	useCmd.ValidArgsFunction = completeProfileNames
	deleteCmd.ValidArgsFunction = completeProfileNames

	deleteCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Delete without asking for confirmation")

	rootCmd.AddCommand(saveCmd, useCmd, listCmd, currentCmd, deleteCmd)
}
