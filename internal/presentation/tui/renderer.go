package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// defaultWidth is used when the output is not attached to a terminal.
const defaultWidth = 80

// maxWrapWidth keeps rendered explanations readable on very wide terminals.
const maxWrapWidth = 100

// IsInteractive reports whether stdout is attached to a terminal.
// Banners and markdown rendering are skipped when piping to a file.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the current terminal width, or a sane default when the
// size cannot be determined (pipes, CI).
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// NewRenderer returns a function that renders markdown using glamour.
// It uses a dark theme by default, but could be configurable.
func NewRenderer() func(string) (string, error) {
	width := Width()
	if width > maxWrapWidth {
		width = maxWrapWidth
	}

	// Initialize renderer with standard dark style
	// In the future, we can inject style preferences here.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
