package config

import "github.com/fatih/color"

// Color constants for logging
const (
	ColorGreen   = color.FgGreen
	ColorBlue    = color.FgBlue
	ColorMagenta = color.FgMagenta
	ColorCyan    = color.FgCyan
	ColorPurple  = color.FgHiMagenta
)
