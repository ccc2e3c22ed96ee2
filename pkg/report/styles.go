// Package report renders validation results for the terminal.
package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/user/cablecheck/pkg/engine"
)

// Status palette: green PASS, amber WARN, red FAIL.
var (
	ColorPass   = lipgloss.Color("#10b981")
	ColorWarn   = lipgloss.Color("#f59e0b")
	ColorFail   = lipgloss.Color("#ef4444")
	ColorAccent = lipgloss.Color("#3b82f6")
	ColorMuted  = lipgloss.Color("245")
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Align(lipgloss.Center)

	borderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	cellStyle = lipgloss.NewStyle().
		Padding(0, 1)

	passStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPass)
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarn)
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFail)
)

func statusStyle(s engine.Severity) lipgloss.Style {
	switch s {
	case engine.SeverityFail:
		return failStyle
	case engine.SeverityWarn:
		return warnStyle
	default:
		return passStyle
	}
}
