package logging

import (
	"fmt"
	"os"
)

// Status output for humans, separate from the structured logger.
// Info and success lines go to stdout; warnings and errors to stderr.

// UserInfo prints an informational line.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success line.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning line.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// UserError prints an error line.
func UserError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
