package ui

// Color accessor functions return the ANSI escape code for the corresponding
// category in the active theme. They are safe for concurrent use.

// ColorPrimary returns the primary accent color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the informational color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the bold formatting code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline formatting code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
