package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/playback"
	"github.com/Godevs04/tunesnip/internal/tui/styles"
)

// PlayerBar is the one-line playback status under the trim editor.
type PlayerBar struct{}

// NewPlayerBar creates a new PlayerBar component.
func NewPlayerBar() *PlayerBar {
	return &PlayerBar{}
}

// Render renders the status line.
func (p *PlayerBar) Render(state *core.PlaybackState, ctrlState playback.State, sel core.Selection, width int) string {
	if state == nil || !state.HasTrack() {
		return styles.Dim.Render("nothing loaded")
	}

	var left string
	switch ctrlState {
	case playback.StateLoading:
		left = styles.Paused.Render("… loading")
	case playback.StatePlaying:
		left = styles.StatusIcon(true) + " " + styles.Playing.Render(state.Track.Title)
	default:
		left = styles.StatusIcon(false) + " " + styles.Title.Render(state.Track.Title)
	}
	left += " " + styles.Subtitle.Render(state.Track.Artist)

	loop := fmt.Sprintf("loop %s–%s", FormatClock(sel.Start), FormatClock(sel.End))
	right := styles.Muted.Render(fmt.Sprintf("%s  %s  vol %d%%",
		FormatClock(state.Position), loop, state.Volume))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
