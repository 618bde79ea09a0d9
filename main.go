package main

import (
	"gitup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// gitup manages the identity in git's global configuration:
//   - Reads and writes user.name, user.email, user.signingkey and commit.gpgsign
//   - Guides first-time setup interactively, or applies values directly with `set`
//   - Saves the current identity as a named profile and switches between profiles
//   - Tracks the active profile in a JSON file under the user's config directory
//
// Every command can print JSON envelopes with --json. Failures are reported once
// and make the program exit with status 1.
func main() {
	cmd.Execute()
}
