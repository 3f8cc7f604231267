package engine

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/errors"
)

// Handle wraps one decoded track on the shared speaker. All mutation of
// the streamer graph happens under the speaker lock.
type Handle struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	released bool
}

func newHandle(streamer beep.StreamSeekCloser, format beep.Format) *Handle {
	ctrl := &beep.Ctrl{
		Streamer: beep.Resample(4, format.SampleRate, outputRate, streamer),
		Paused:   true,
	}
	volume := &effects.Volume{Streamer: ctrl, Base: 2}

	speaker.Play(volume)

	return &Handle{
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   volume,
	}
}

// Play resumes output.
func (h *Handle) Play() error {
	if h.released {
		return errors.ErrHandleReleased
	}
	speaker.Lock()
	h.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause halts output without releasing the stream.
func (h *Handle) Pause() error {
	if h.released {
		return errors.ErrHandleReleased
	}
	speaker.Lock()
	h.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Seek moves the playhead to the given position.
func (h *Handle) Seek(pos time.Duration) error {
	if h.released {
		return errors.ErrHandleReleased
	}
	n := h.format.SampleRate.N(pos)
	if n < 0 {
		n = 0
	}
	if l := h.streamer.Len(); n >= l {
		n = l - 1
	}
	speaker.Lock()
	err := h.streamer.Seek(n)
	speaker.Unlock()
	return err
}

// Status reports the current position and playing flag.
func (h *Handle) Status() (core.HandleStatus, error) {
	if h.released {
		return core.HandleStatus{}, errors.ErrHandleReleased
	}
	speaker.Lock()
	st := core.HandleStatus{
		Position: h.format.SampleRate.D(h.streamer.Position()),
		Duration: h.format.SampleRate.D(h.streamer.Len()),
		Playing:  !h.ctrl.Paused,
	}
	speaker.Unlock()

	if err := h.streamer.Err(); err != nil {
		return core.HandleStatus{}, err
	}
	return st, nil
}

// SetVolume sets output volume as a percentage (0-100).
func (h *Handle) SetVolume(percent int) error {
	if h.released {
		return errors.ErrHandleReleased
	}
	speaker.Lock()
	h.volume.Silent = percent <= 0
	if percent > 0 {
		h.volume.Volume = volumeFor(percent)
	}
	speaker.Unlock()
	return nil
}

// Release detaches the stream from the speaker and closes the decoder.
// Idempotent: repeated calls return nil.
func (h *Handle) Release() error {
	if h.released {
		return nil
	}
	h.released = true

	speaker.Lock()
	h.ctrl.Paused = true
	h.ctrl.Streamer = nil
	speaker.Unlock()

	return h.streamer.Close()
}

// volumeFor maps a 1-100 percentage onto the exponential volume scale.
func volumeFor(percent int) float64 {
	if percent > 100 {
		percent = 100
	}
	return math.Log2(float64(percent) / 100)
}

var (
	_ core.AudioHandle  = (*Handle)(nil)
	_ core.VolumeHandle = (*Handle)(nil)
)
