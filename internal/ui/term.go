package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is used when the terminal width cannot be determined.
const DefaultTermWidth = 80

// IsTerminal reports whether stdout is attached to a terminal. Styled and
// rendered output is only produced for terminals; pipes get plain text.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TermWidth returns the current terminal width, or DefaultTermWidth when
// stdout is not a terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}
