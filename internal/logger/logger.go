package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.
//
// All levels write to stderr so that machine-readable output on stdout
// (the --json mode) is never interleaved with log lines.

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Info = printer(color.FgGreen, os.Stderr)

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = printer(color.FgHiMagenta, os.Stderr)

// Error logs error messages in red color.
// Red is commonly associated with errors or critical problems to draw immediate attention.
var Error = printer(color.FgRed, os.Stderr)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op so packages can log before Init has run (tests, completion).
var Debug = noop

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
// - out: destination writer for every level; nil keeps stderr.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	Info = printer(color.FgGreen, out)
	Warn = printer(color.FgHiMagenta, out)
	Error = printer(color.FgRed, out)

	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = printer(color.FgCyan, out)
	} else {
		// Assign Debug to a no-op function that ignores all debug logs.
		Debug = noop
	}
}

// printer binds a colored Fprintf to a fixed writer.
func printer(attr color.Attribute, out io.Writer) func(format string, a ...any) {
	fprintf := color.New(attr).FprintfFunc()
	return func(format string, a ...any) {
		fprintf(out, format, a...)
	}
}

func noop(format string, a ...any) {}
