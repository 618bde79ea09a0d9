package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd shows the live identity and the active profile without changing anything.
var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"status"},
	Short:   "Checks the current Git installation and configuration",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := application.Check()
		if err != nil {
			return err
		}
		return printStatus(cmd, status, "")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
