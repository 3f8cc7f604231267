package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/tui/styles"
)

// TrackList displays catalog search results.
type TrackList struct {
	offset   int
	selected int
}

// NewTrackList creates a new TrackList component.
func NewTrackList() *TrackList {
	return &TrackList{}
}

// SelectNext moves the cursor down.
func (l *TrackList) SelectNext(count int) {
	if l.selected < count-1 {
		l.selected++
	}
}

// SelectPrev moves the cursor up.
func (l *TrackList) SelectPrev() {
	if l.selected > 0 {
		l.selected--
	}
}

// Selected returns the cursor index.
func (l *TrackList) Selected() int {
	return l.selected
}

// Reset moves the cursor and scroll offset back to the top.
func (l *TrackList) Reset() {
	l.selected = 0
	l.offset = 0
}

// Render renders the result list panel.
func (l *TrackList) Render(tracks []core.Track, width, height int, focused bool) string {
	title := styles.PanelTitle("Results", focused)

	var content string
	if len(tracks) == 0 {
		content = styles.Muted.Render("No results")
	} else {
		content = l.renderTracks(tracks, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (l *TrackList) renderTracks(tracks []core.Track, width, maxLines int) string {
	if l.selected >= len(tracks) {
		l.selected = len(tracks) - 1
	}

	visible := maxLines - 1 // leave room for the "more" indicator
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor on screen.
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+visible {
		l.offset = l.selected - visible + 1
	}

	start := l.offset
	end := start + visible
	if end > len(tracks) {
		end = len(tracks)
	}

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		track := tracks[i]

		dur := FormatClock(track.Duration)
		// "XX. " + " — " + duration + padding
		avail := width - 10 - len(dur)
		line := fmt.Sprintf("%2d. %s — %s %s",
			i+1,
			truncate(track.Title, avail*2/3),
			truncate(track.Artist, avail/3),
			styles.Dim.Render(dur))

		if i == l.selected {
			line = styles.Highlight.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	if end < len(tracks) {
		lines = append(lines, styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(tracks)-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
