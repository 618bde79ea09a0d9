// Package prompt collects interactive input for setup, use and delete.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	gerrors "gitup/internal/errors"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user for input. Every method returns
// errors.ErrOperationCancelled when the user aborts (Ctrl-C / Ctrl-D).
type Prompter interface {
	// Confirm asks a yes/no question; def is the answer on a bare Enter.
	Confirm(label string, def bool) (bool, error)
	// Input asks for a non-empty value, pre-filled with def.
	Input(label, def string) (string, error)
	// OptionalInput asks for a value that may be left empty.
	OptionalInput(label, def string) (string, error)
	// Select lets the user pick one of items and returns it.
	Select(label string, items []string) (string, error)
}

// PromptUI is the terminal Prompter built on promptui.
// Prompts are drawn on Stdout, which defaults to stderr so stdout stays
// reserved for command output.
type PromptUI struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewPromptUI returns a PromptUI reading stdin and drawing on stderr.
func NewPromptUI() *PromptUI {
	return &PromptUI{Stdin: os.Stdin, Stdout: os.Stderr}
}

func (p *PromptUI) Confirm(label string, def bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	if def {
		prompt.Default = "y"
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		// promptui reports a "no" answer as ErrAbort
		return false, nil
	default:
		return false, cancelled(err)
	}
}

func (p *PromptUI) Input(label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("value cannot be empty")
			}
			return nil
		},
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return strings.TrimSpace(value), nil
}

func (p *PromptUI) OptionalInput(label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return strings.TrimSpace(value), nil
}

func (p *PromptUI) Select(label string, items []string) (string, error) {
	if len(items) == 0 {
		return "", gerrors.ErrNoProfiles
	}

	sel := promptui.Select{
		Label:  label,
		Items:  items,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", cancelled(err)
	}
	return value, nil
}

// cancelled maps any prompt failure (interrupt, EOF, closed terminal) to ErrOperationCancelled.
func cancelled(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return gerrors.ErrOperationCancelled
	}
	return fmt.Errorf("%w: %v", gerrors.ErrOperationCancelled, err)
}
