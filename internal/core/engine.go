package core

import (
	"context"
	"time"
)

// AudioEngine opens remote audio resources for playback.
type AudioEngine interface {
	// Load fetches and decodes the resource at url, returning a handle
	// positioned at the start of the stream.
	Load(ctx context.Context, url string) (AudioHandle, error)
}

// AudioHandle wraps one loaded audio resource. At most one handle is live
// per selection session; it must be released before a replacement is
// acquired.
type AudioHandle interface {
	Play() error
	Pause() error
	Seek(pos time.Duration) error

	// Status reports the current position and playing flag. An error
	// indicates the underlying resource is gone (externally unloaded).
	Status() (HandleStatus, error)

	// Release tears down the handle. Safe to call more than once.
	Release() error
}

// VolumeHandle is implemented by handles that support volume control.
type VolumeHandle interface {
	SetVolume(percent int) error
}

// HandleStatus is a point-in-time snapshot of a handle.
type HandleStatus struct {
	Position time.Duration
	Duration time.Duration
	Playing  bool
}
