package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by NewRenderer.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// NewRenderer returns a function that renders markdown using glamour.
// "auto" detects the terminal background.
func NewRenderer(style string) (func(string) (string, error), error) {
	var opt glamour.TermRendererOption
	switch style {
	case "", StyleAuto:
		opt = glamour.WithAutoStyle()
	case StyleDark, StyleLight, StyleNoTTY:
		opt = glamour.WithStandardStyle(style)
	default:
		return nil, fmt.Errorf("unknown render style %q", style)
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
