// Package ui provides terminal output helpers for ezlay: TTY detection
// and an activity spinner that degrades to plain log lines when no
// terminal is attached.
package ui

import "os"

// ColorPalette holds the brand colors used by interactive components.
type ColorPalette struct {
	Primary   string
	Secondary string
}

// Theme carries color choices and the no-color switch shared by
// interactive components.
type Theme struct {
	NoColor bool
	Colors  ColorPalette
}

// DefaultTheme returns the ezlay theme. It honors the NO_COLOR
// convention by disabling styling when the variable is set.
func DefaultTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: ColorPalette{
			Primary:   "#9575CD",
			Secondary: "#64B5F6",
		},
	}
}
