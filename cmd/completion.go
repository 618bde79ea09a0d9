package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd prints a shell completion script. It never needs git.
var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish|powershell>",
	Short: "Generates shell completion scripts",
	Long: `Generates a completion script for the given shell and prints it to stdout.

  source <(gitup completion bash)
  gitup completion zsh > "${fpath[1]}/_gitup"
  gitup completion fish > ~/.config/fish/completions/gitup.fish`,
	Args:                  cobra.ExactArgs(1),
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	DisableFlagsInUseLine: true,
	Annotations:           map[string]string{noGitCheck: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}
