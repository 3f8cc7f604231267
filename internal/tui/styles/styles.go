package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Colors - catppuccin mocha palette
var (
	// Primary colors
	Primary   = lipgloss.Color(catppuccin.Mocha.Mauve().Hex)
	Secondary = lipgloss.Color(catppuccin.Mocha.Green().Hex)
	Accent    = lipgloss.Color(catppuccin.Mocha.Peach().Hex)

	// Status colors
	Success = lipgloss.Color(catppuccin.Mocha.Green().Hex)
	Warning = lipgloss.Color(catppuccin.Mocha.Yellow().Hex)
	Error   = lipgloss.Color(catppuccin.Mocha.Red().Hex)

	// Neutral colors
	Surface   = lipgloss.Color(catppuccin.Mocha.Surface0().Hex)
	Border    = lipgloss.Color(catppuccin.Mocha.Surface2().Hex)
	Text      = lipgloss.Color(catppuccin.Mocha.Text().Hex)
	TextMuted = lipgloss.Color(catppuccin.Mocha.Subtext0().Hex)
	TextDim   = lipgloss.Color(catppuccin.Mocha.Overlay0().Hex)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Playing = lipgloss.NewStyle().
		Foreground(Success)

	Paused = lipgloss.NewStyle().
		Foreground(Warning)

	Alert = lipgloss.NewStyle().
		Foreground(Error)
)

// Timeline styles
var (
	Wave = lipgloss.NewStyle().
		Foreground(TextDim)

	WaveSelected = lipgloss.NewStyle().
			Foreground(Primary)

	HandleIdle = lipgloss.NewStyle().
			Foreground(Accent)

	HandleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning)

	HandleAtLimit = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)

	Playhead = lipgloss.NewStyle().
			Foreground(Success)

	Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(catppuccin.Mocha.Crust().Hex)).
		Background(Accent).
		Padding(0, 1)
)

// Border styles
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)
)

// Panel creates a styled panel with optional focus
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func PanelTitle(title string, focused bool) string {
	style := Dim
	if focused {
		style = Highlight
	}
	return style.Render(" " + title + " ")
}

// StatusIcon returns an icon for playback status
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Paused.Render("⏸")
}
