package ui

import (
	"os"

	xterm "github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is used when the terminal width cannot be determined.
const DefaultTermWidth = 80

// IsTTY reports whether stdout is an interactive terminal.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TermWidth returns the terminal width, or DefaultTermWidth when stdout
// is not a terminal.
func TermWidth() int {
	w, _, err := xterm.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return DefaultTermWidth
	}
	return w
}
