package cmd

import (
	"os"

	"gitup/internal/app"

	"github.com/spf13/cobra"
)

// Environment variables used when the matching set flag is absent.
const (
	EnvUserName   = "GITUP_USER_NAME"
	EnvUserEmail  = "GITUP_USER_EMAIL"
	EnvSigningKey = "GITUP_SIGNING_KEY"
)

// Flag values of the set command.
var (
	setName       string
	setEmail      string
	setSigningKey string
)

// setCmd writes the supplied identity fields and leaves the others alone.
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Sets Git configuration values directly",
	Long: `Sets git identity values directly, without prompting.

Only the supplied fields are written. Passing an empty --signing-key clears
the key and disables commit signing; a non-empty key enables it.

Flags fall back to GITUP_USER_NAME, GITUP_USER_EMAIL and GITUP_SIGNING_KEY.`,
	Example: `  gitup set --name "Jane Doe" --email jane@example.com
  gitup set --signing-key 3AA5C34371567BD2
  gitup set --signing-key ""`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := application.Set(app.SetFields{
			Name:       flagOrEnv(cmd, "name", setName, EnvUserName),
			Email:      flagOrEnv(cmd, "email", setEmail, EnvUserEmail),
			SigningKey: flagOrEnv(cmd, "signing-key", setSigningKey, EnvSigningKey),
		})
		if err != nil {
			return err
		}
		return printStatus(cmd, status, "Git configuration updated successfully.")
	},
}

// flagOrEnv returns the flag value when it was given, else a non-empty
// environment value, else nil.
func flagOrEnv(cmd *cobra.Command, flag, value, env string) *string {
	if cmd.Flags().Changed(flag) {
		return &value
	}
	if v := os.Getenv(env); v != "" {
		return &v
	}
	return nil
}

func init() {
	setCmd.Flags().StringVarP(&setName, "name", "n", "", "The user name to configure")
	setCmd.Flags().StringVarP(&setEmail, "email", "e", "", "The user email to configure")
	setCmd.Flags().StringVarP(&setSigningKey, "signing-key", "k", "", "The GPG/SSH signing key to configure (empty disables signing)")
	rootCmd.AddCommand(setCmd)
}
