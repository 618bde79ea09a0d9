package installer

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	gerrors "gitup/internal/errors"
	"gitup/internal/logger"
)

// Runner executes an external program once and returns its trimmed stdout.
//
// Implementations must distinguish a program that could not be started
// (*errors.CommandLaunchError) from one that ran and exited non-zero
// (*errors.CommandFailedError).
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// ExecRunner is the Runner backed by os/exec.
type ExecRunner struct{}

// Run starts name with args, waits for it, and maps the outcome to a result.
func (ExecRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	commandLine := strings.Join(cmd.Args, " ")
	logger.Debug("[DEBUG] Running command: %s\n", commandLine)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("[DEBUG] Command exited with code %d: %s\n", exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
			return "", &gerrors.CommandFailedError{
				Command: commandLine,
				Code:    exitErr.ExitCode(),
				Stderr:  stderr.String(),
			}
		}
		// The binary is missing or not executable
		return "", &gerrors.CommandLaunchError{Command: name, Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}
