// Package ui provides the visual styling for the QualityStudio chat
// interface.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorPrimary = lipgloss.Color("#7aa2f7") // blue: user label, header
	ColorAccent  = lipgloss.Color("#9ece6a") // green: assistant label
	ColorMuted   = lipgloss.Color("#565f89") // dim: footer, hints, source tags
	ColorBorder  = lipgloss.Color("#3b4261")
	ColorError   = lipgloss.Color("#f7768e")
	ColorWarning = lipgloss.Color("#e0af68")
)

// Styles holds the lipgloss styles used across the chat views.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	UserLabel lipgloss.Style
	BotLabel  lipgloss.Style
	UserText  lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	SourceTag lipgloss.Style
	InputBox  lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorBorder),
		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1),
		BotLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginTop(1),
		UserText: lipgloss.NewStyle().
			PaddingLeft(2),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		SourceTag: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Underline(true),
		InputBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
	}
}
