package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// terminalWidth returns the current terminal width, with a sane fallback
// for pipes and constrained environments.
func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 100
	}
	return width
}
