package ui

import "os"

// ColorPalette holds the ANSI-compatible hex colors used across UI
// components.
type ColorPalette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries the color palette and the NoColor flag that UI
// components consult before styling output.
type Theme struct {
	Colors  ColorPalette
	NoColor bool
}

// NewTheme creates the default theme. NO_COLOR in the environment
// disables colored output entirely.
func NewTheme() *Theme {
	return &Theme{
		Colors: ColorPalette{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}
