// Package ui provides terminal color themes shared by the CLI and TUI
// presentation layers. CLI output uses raw ANSI escape codes; the TUI
// dashboard uses the matching lipgloss palette.
package ui
