// Package ui holds the terminal styling shared by the command-line output
// and the interactive timer
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Dark selects the brighter colour variants used on dark backgrounds.
var Dark = true

// DetectBackground sets Dark from the terminal's background colour.
func DetectBackground() {
	Dark = lipgloss.HasDarkBackground()
}

// DisableColor turns off all pterm styling for the rest of the process.
func DisableColor() {
	pterm.DisableColor()
	pterm.DisableStyling()
}

func Green(a any) string {
	if Dark {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if Dark {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}
