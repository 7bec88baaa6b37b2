// Package termwidth discovers the terminal column count used to size bar
// output. Discovery is a fresh query on every call so a resize between
// frames is reflected in the next rendered row.
package termwidth

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Auto returns the current terminal width in columns. It probes stdout
// first, then stderr (progress rows usually go to stderr while stdout is
// redirected), then falls back to the COLUMNS environment variable.
// Returns 0 when the width cannot be determined.
func Auto() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return 0
}

// Terminal returns a width provider bound to a single file. Use it when
// the caller knows which stream the bar is written to and does not want
// the stdout-then-stderr probing that Auto performs.
func Terminal(f *os.File) func() int {
	return func() int {
		w, _, err := term.GetSize(int(f.Fd()))
		if err != nil || w < 0 {
			return 0
		}
		return w
	}
}

// Fixed returns a width provider that always reports n columns. Negative
// values are treated as unknown and report 0.
func Fixed(n int) func() int {
	if n < 0 {
		n = 0
	}
	return func() int { return n }
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
