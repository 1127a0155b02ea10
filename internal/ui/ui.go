// Package ui provides the small set of terminal output helpers the CLI
// uses: color-aware styling and status lines.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Stdout and Stderr are overridable for tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var colorEnabled = detectColor(os.Stdout)

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled overrides color detection (for testing).
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func ansi(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold returns s wrapped in bold ANSI codes.
func Bold(s string) string { return ansi("1", s) }

// Dim returns s wrapped in dim ANSI codes.
func Dim(s string) string { return ansi("2", s) }

// Green returns s wrapped in green ANSI codes.
func Green(s string) string { return ansi("32", s) }

// Red returns s wrapped in red ANSI codes.
func Red(s string) string { return ansi("31", s) }

// Yellow returns s wrapped in yellow ANSI codes.
func Yellow(s string) string { return ansi("33", s) }

// Printf writes a plain formatted line to stdout.
func Printf(format string, args ...any) {
	fmt.Fprintf(Stdout, format, args...)
}

// Successf writes a green check line to stdout.
func Successf(format string, args ...any) {
	fmt.Fprintf(Stdout, "%s %s\n", Green("✓"), fmt.Sprintf(format, args...))
}

// Warnf writes a yellow warning line to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", Yellow("!"), fmt.Sprintf(format, args...))
}

// Errorf writes a red cross line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", Red("✗"), fmt.Sprintf(format, args...))
}
