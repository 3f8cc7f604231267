package core

import "time"

// PlaybackState is a snapshot of the playback controller for rendering.
type PlaybackState struct {
	Track     *Track        `json:"track"`
	IsPlaying bool          `json:"is_playing"`
	Position  time.Duration `json:"position"`
	Volume    int           `json:"volume"`
}

// HasTrack returns true if there is a loaded track.
func (s *PlaybackState) HasTrack() bool {
	return s != nil && s.Track != nil
}

// ClipPercent returns the position as a percentage of the clip span
// (0-100), measured from the clip start.
func (s *PlaybackState) ClipPercent(sel Selection) float64 {
	if s == nil || sel.Span() <= 0 {
		return 0
	}
	p := s.Position - sel.Start
	if p < 0 {
		p = 0
	}
	if p > sel.Span() {
		p = sel.Span()
	}
	return float64(p) / float64(sel.Span()) * 100
}
