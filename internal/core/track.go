package core

import "time"

// Track represents an audio track from the song catalog.
type Track struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Artist     string        `json:"artist"`
	Album      string        `json:"album,omitempty"`
	Duration   time.Duration `json:"duration"`
	RemoteURL  string        `json:"remote_url"`
	ArtworkURL string        `json:"artwork_url,omitempty"`
}

// HasAudio returns true if the track has a playable remote resource.
func (t *Track) HasAudio() bool {
	return t != nil && t.RemoteURL != "" && t.Duration > 0
}

// Clip is the confirmed sub-range of a track handed upward on Done.
// A nil *Clip means "no music attached".
type Clip struct {
	TrackID      string  `json:"track_id"`
	Title        string  `json:"title"`
	Artist       string  `json:"artist"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
}

// NewClip builds the confirmation payload for a track and selection.
func NewClip(track *Track, sel Selection) *Clip {
	if track == nil {
		return nil
	}
	return &Clip{
		TrackID:      track.ID,
		Title:        track.Title,
		Artist:       track.Artist,
		StartSeconds: sel.Start.Seconds(),
		EndSeconds:   sel.End.Seconds(),
	}
}
