package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/abray/logbench/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	elapsedStyle    lipgloss.Style
	sectionStyle    lipgloss.Style
	strategyStyle   lipgloss.Style
	valueStyle      lipgloss.Style
	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	chartBarStyle   lipgloss.Style
	chartEmptyStyle lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	dimStyle        lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Info)

	strategyStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	chartBarStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	chartEmptyStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
