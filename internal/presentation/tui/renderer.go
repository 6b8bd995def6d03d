package tui

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns a bot reply into terminal output.
type Renderer func(string) (string, error)

// NewRenderer returns a renderer that formats replies as markdown with
// glamour. Line breaks are kept as typed since menu messages are line based.
func NewRenderer() (Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithPreservedNewLines(),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// PlainRenderer returns the reply unchanged with a trailing newline.
func PlainRenderer() Renderer {
	return func(s string) (string, error) {
		return s + "\n", nil
	}
}
