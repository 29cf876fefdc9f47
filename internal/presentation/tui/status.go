package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Status formats a one-line check result: a green ✔ or a red ✘ followed by msg.
// Colours degrade to plain text when the output does not support them.
func Status(ok bool, msg string) string {
	p := termenv.ColorProfile()
	if ok {
		return fmt.Sprintf("%s %s", p.String("✔").Foreground(p.Color("#22c55e")), msg)
	}
	return fmt.Sprintf("%s %s", p.String("✘").Foreground(p.Color("#ef4444")).Bold(), msg)
}
