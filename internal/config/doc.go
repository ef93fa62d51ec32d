// Package config loads label descriptions for the labeldemo command.
//
// A label file is TOML:
//
//	text = "_File operations\nare listed here"
//	align = "centered"        # left | right | centered | justified
//	width = 30
//	height = 4
//	hotkey_specifier = "_"
//
//	[colors]
//	normal = { fg = "#d0d0d0", bg = "#202020" }
//	hot    = { fg = "#ffcc00", bg = "#202020", bold = true }
//
//	[keys]
//	quit  = "escape"
//	align = "tab"
//
// Missing keys keep the values of Default. Unknown keys are rejected.
package config
