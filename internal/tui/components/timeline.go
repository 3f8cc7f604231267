package components

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/gesture"
	"github.com/Godevs04/tunesnip/internal/tui/styles"
)

// Mouse zone IDs for the trim editor.
const (
	ZoneWave        = "trim_wave"
	ZoneStartHandle = "trim_start"
	ZoneEndHandle   = "trim_end"
)

var waveGlyphs = []rune("▁▂▃▄▅▆▇")

// DragView is the transient drag state the timeline renders: the floating
// badge above the active handle and limit-hit highlighting.
type DragView struct {
	Active gesture.Handle
	Badge  time.Duration
	Limit  core.LimitState
}

// Timeline renders the waveform strip, the selection window with its two
// handles, the playhead and the floating time badge.
type Timeline struct{}

// NewTimeline creates a new Timeline component.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// InnerWidth returns the number of waveform cells for a panel width.
func (t *Timeline) InnerWidth(width int) int {
	w := width - 4 // panel border and padding
	if w < 16 {
		w = 16
	}
	return w
}

// Render renders the trim editor panel.
func (t *Timeline) Render(track *core.Track, sel core.Selection, pos time.Duration, drag DragView, width int, focused bool) string {
	title := styles.PanelTitle("Trim", focused)

	var content string
	if track == nil {
		content = styles.Muted.Render("No track selected")
	} else {
		content = t.renderTrack(track, sel, pos, drag, t.InnerWidth(width))
	}

	panel := styles.Panel(focused).Width(width)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		content,
	))
}

func (t *Timeline) renderTrack(track *core.Track, sel core.Selection, pos time.Duration, drag DragView, w int) string {
	startPx := cellFor(sel.Start, w, track.Duration)
	endPx := cellFor(sel.End, w, track.Duration)
	if endPx <= startPx {
		endPx = startPx + 1
	}
	if endPx > w-1 {
		endPx = w - 1
	}

	badge := t.renderBadge(drag, startPx, endPx, w)
	wave := t.renderWave(track, startPx, endPx, drag, w)
	ruler := t.renderRuler(pos, startPx, endPx, w, track.Duration)
	times := t.renderTimes(sel, w, track.Duration)

	return lipgloss.JoinVertical(lipgloss.Left, badge, wave, ruler, times)
}

// renderBadge draws the floating time badge above the active handle
// while a drag is in progress, and a blank spacer line otherwise.
func (t *Timeline) renderBadge(drag DragView, startPx, endPx, w int) string {
	if drag.Active == gesture.HandleNone {
		return ""
	}

	label := FormatClock(drag.Badge)
	if drag.Limit == core.LimitAtMinimum || drag.Limit == core.LimitAtMaximum {
		label += " " + drag.Limit.String()
	}
	badge := styles.Badge.Render(label)

	at := startPx
	switch drag.Active {
	case gesture.HandleEnd:
		at = endPx
	case gesture.HandleBoth:
		at = (startPx + endPx) / 2
	}

	pad := at - lipgloss.Width(badge)/2
	if pad+lipgloss.Width(badge) > w {
		pad = w - lipgloss.Width(badge)
	}
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + badge
}

// renderWave draws the amplitude strip with the selection highlighted
// and the two handles marked as mouse zones.
func (t *Timeline) renderWave(track *core.Track, startPx, endPx int, drag DragView, w int) string {
	heights := waveHeights(track.ID, w)

	handleStyle := func(h gesture.Handle) lipgloss.Style {
		if drag.Active == h {
			if drag.Limit == core.LimitAtMinimum || drag.Limit == core.LimitAtMaximum {
				return styles.HandleAtLimit
			}
			return styles.HandleActive
		}
		return styles.HandleIdle
	}

	var b strings.Builder
	for i := 0; i < w; i++ {
		cell := string(waveGlyphs[heights[i]])
		switch {
		case i == startPx:
			b.WriteString(zone.Mark(ZoneStartHandle, handleStyle(gesture.HandleStart).Render("▐")))
		case i == endPx:
			b.WriteString(zone.Mark(ZoneEndHandle, handleStyle(gesture.HandleEnd).Render("▌")))
		case i > startPx && i < endPx:
			b.WriteString(styles.WaveSelected.Render(cell))
		default:
			b.WriteString(styles.Wave.Render(cell))
		}
	}

	return zone.Mark(ZoneWave, b.String())
}

// renderRuler draws the selection span with the playhead position.
func (t *Timeline) renderRuler(pos time.Duration, startPx, endPx, w int, duration time.Duration) string {
	posPx := cellFor(pos, w, duration)

	var b strings.Builder
	for i := 0; i < w; i++ {
		switch {
		case i == posPx:
			b.WriteString(styles.Playhead.Render("●"))
		case i >= startPx && i <= endPx:
			b.WriteString(styles.WaveSelected.Render("━"))
		default:
			b.WriteString(styles.Dim.Render("─"))
		}
	}
	return b.String()
}

func (t *Timeline) renderTimes(sel core.Selection, w int, duration time.Duration) string {
	left := FormatClock(0)
	right := FormatClock(duration)
	mid := fmt.Sprintf("%s – %s (%.1fs)", FormatClock(sel.Start), FormatClock(sel.End), sel.Span().Seconds())

	switch sel.Limit() {
	case core.LimitAtMinimum, core.LimitAtMaximum:
		mid = styles.Alert.Render(mid)
	case core.LimitApproachingMin:
		mid = styles.Paused.Render(mid)
	default:
		mid = styles.Subtitle.Render(mid)
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if gap < 2 {
		return mid
	}
	lgap := gap / 2
	rgap := gap - lgap
	return styles.Dim.Render(left) + strings.Repeat(" ", lgap) + mid + strings.Repeat(" ", rgap) + styles.Dim.Render(right)
}

// cellFor maps a time onto a waveform cell index.
func cellFor(t time.Duration, w int, duration time.Duration) int {
	px := int(core.PixelFromTime(t, float64(w), duration))
	if px > w-1 {
		px = w - 1
	}
	if px < 0 {
		px = 0
	}
	return px
}

// waveHeights derives a stable pseudo-waveform from the track ID. The
// catalog serves no amplitude data; the strip only needs to look like
// the track it belongs to and stay put between frames.
func waveHeights(trackID string, w int) []int {
	heights := make([]int, w)
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackID))
	seed := h.Sum32()

	for i := range heights {
		seed = seed*1664525 + 1013904223
		heights[i] = int(seed>>28) % len(waveGlyphs)
		if heights[i] < 0 {
			heights[i] = 0
		}
	}
	return heights
}

// FormatClock formats a duration as m:ss.t within a track.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	s := int(d/time.Second) % 60
	tenths := int(d/(100*time.Millisecond)) % 10
	return fmt.Sprintf("%d:%02d.%d", m, s, tenths)
}
