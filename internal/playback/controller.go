// Package playback owns the single live audio handle for a clip-selection
// session: loading, seeking, bounded-loop playback and the short
// drag-release preview.
package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/Godevs04/tunesnip/internal/core"
	"github.com/Godevs04/tunesnip/internal/errors"
)

// State represents the controller lifecycle.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unloaded"
	}
}

const (
	// PollInterval is the position-poll cadence that drives loop
	// detection. The engine has no boundary-reached callback, so the
	// controller approximates one by polling.
	PollInterval = 200 * time.Millisecond

	// PreviewDuration is the length of the drag-release audio burst.
	PreviewDuration = 500 * time.Millisecond
)

// Controller drives playback of the selected clip. All methods are meant
// to be called from a single event loop; the controller holds no locks.
type Controller struct {
	engine    core.AudioEngine
	exclusive *Exclusive
	ownerID   string

	track    *core.Track
	handle   core.AudioHandle
	state    State
	position time.Duration
	volume   int

	// One-shot preview bookkeeping.
	previewUntil       time.Time
	resumeAfterPreview bool
}

// NewController creates a controller bound to the given engine and
// exclusive-playback coordinator.
func NewController(engine core.AudioEngine, exclusive *Exclusive, ownerID string) *Controller {
	return &Controller{
		engine:    engine,
		exclusive: exclusive,
		ownerID:   ownerID,
		volume:    100,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Track returns the loaded track, or nil.
func (c *Controller) Track() *core.Track {
	return c.track
}

// Snapshot returns the playback state for rendering.
func (c *Controller) Snapshot() *core.PlaybackState {
	return &core.PlaybackState{
		Track:     c.track,
		IsPlaying: c.state == StatePlaying,
		Position:  c.position,
		Volume:    c.volume,
	}
}

// Load opens the track's remote resource and positions playback at the
// selection start. Any previous handle is fully released first; exactly
// one handle is live at a time. On failure the controller reverts to
// Unloaded and the selection is untouched.
func (c *Controller) Load(ctx context.Context, track *core.Track, sel core.Selection) error {
	if !track.HasAudio() {
		return errors.ErrNoAudio
	}

	if err := c.Unload(); err != nil {
		return fmt.Errorf("releasing previous handle: %w", err)
	}

	c.state = StateLoading
	handle, err := c.engine.Load(ctx, track.RemoteURL)
	if err != nil {
		c.state = StateUnloaded
		return fmt.Errorf("%w: %v", errors.ErrTrackLoadFailed, err)
	}

	c.track = track
	c.handle = handle
	c.applyVolume()
	_ = handle.Seek(sel.Start)
	c.position = sel.Start
	c.state = StateReady
	return nil
}

// Play starts playback within the clip, loading the track first if no
// handle is live.
func (c *Controller) Play(ctx context.Context, sel core.Selection) error {
	if c.handle == nil {
		if c.track == nil {
			return errors.ErrNoAudio
		}
		if err := c.Load(ctx, c.track, sel); err != nil {
			return err
		}
	}

	c.exclusive.PlayExclusive(c.ownerID, func() { _ = c.Pause() })
	if err := c.handle.Play(); err != nil {
		return err
	}
	c.state = StatePlaying
	return nil
}

// Pause pauses playback. Safe to call in any state.
func (c *Controller) Pause() error {
	if c.handle == nil {
		return nil
	}
	if err := c.handle.Pause(); err != nil {
		return err
	}
	if c.state == StatePlaying {
		c.state = StatePaused
	}
	return nil
}

// Toggle flips between play and pause.
func (c *Controller) Toggle(ctx context.Context, sel core.Selection) error {
	if c.state == StatePlaying {
		return c.Pause()
	}
	return c.Play(ctx, sel)
}

// Seek moves the playhead without touching the selection (single tap on
// the timeline). Seeks on an unloaded handle are expected races during
// rapid interaction and are swallowed.
func (c *Controller) Seek(pos time.Duration) {
	c.position = pos
	if c.handle == nil {
		return
	}
	_ = c.handle.Seek(pos)
}

// SetVolume sets playback volume (0-100).
func (c *Controller) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	c.volume = percent
	c.applyVolume()
}

// Volume returns the current volume percentage.
func (c *Controller) Volume() int {
	return c.volume
}

func (c *Controller) applyVolume() {
	if vh, ok := c.handle.(core.VolumeHandle); ok {
		_ = vh.SetVolume(c.volume)
	}
}

// PreviewAt plays a short burst starting at the given boundary, used on
// drag release to confirm the new position audibly. The prior playback
// state is restored when the burst ends.
func (c *Controller) PreviewAt(ctx context.Context, boundary time.Duration, sel core.Selection) error {
	wasPlaying := c.state == StatePlaying
	if c.Previewing() {
		// A burst is already running; the playing state it set is not the
		// user's. Keep restoring the state from before the first burst.
		wasPlaying = c.resumeAfterPreview
	}

	if c.handle == nil {
		if c.track == nil {
			return nil // nothing to preview yet
		}
		if err := c.Play(ctx, sel); err != nil {
			return err
		}
		_ = c.Pause()
		wasPlaying = false
	}

	c.Seek(boundary)
	c.exclusive.PlayExclusive(c.ownerID, func() { _ = c.Pause() })
	if err := c.handle.Play(); err != nil {
		return err
	}
	c.state = StatePlaying
	c.previewUntil = time.Now().Add(PreviewDuration)
	c.resumeAfterPreview = wasPlaying
	return nil
}

// Previewing returns true while a drag-release burst is running.
func (c *Controller) Previewing() bool {
	return !c.previewUntil.IsZero()
}

// Tick is the periodic position poll. It ends expired previews, wraps
// the playhead back to the selection start when it crosses the end
// boundary, and recovers a handle that was unloaded externally.
func (c *Controller) Tick(ctx context.Context, sel core.Selection) {
	if c.handle == nil {
		return
	}

	st, err := c.handle.Status()
	if err != nil {
		// Externally unloaded: a failed status check is a signal to
		// reload and resume, not an error.
		c.recover(ctx, sel)
		return
	}
	c.position = st.Position

	// Expired preview: return to silence or the prior playing state.
	if c.Previewing() && time.Now().After(c.previewUntil) {
		c.previewUntil = time.Time{}
		if c.resumeAfterPreview {
			c.loopBack(sel)
		} else {
			_ = c.Pause()
			c.Seek(sel.Start)
		}
		c.resumeAfterPreview = false
		return
	}

	if c.state != StatePlaying || c.Previewing() {
		return
	}

	// Loop discipline: the clip plays as a bounded loop. A stream that
	// turns out shorter than the track metadata wraps at its actual end
	// instead of stalling there.
	if st.Position >= sel.End || (st.Duration > 0 && st.Position >= st.Duration) {
		c.loopBack(sel)
	}
}

// loopBack seeks to the selection start and keeps playing. If the seek
// fails, playback is paused and the position reset rather than left in
// an undefined state.
func (c *Controller) loopBack(sel core.Selection) {
	if err := c.handle.Seek(sel.Start); err != nil {
		_ = c.Pause()
		c.position = sel.Start
		return
	}
	c.position = sel.Start
	if err := c.handle.Play(); err != nil {
		_ = c.Pause()
		return
	}
	c.state = StatePlaying
}

// recover reloads a handle whose backing resource disappeared and
// resumes the previous state.
func (c *Controller) recover(ctx context.Context, sel core.Selection) {
	wasPlaying := c.state == StatePlaying
	track := c.track
	pos := c.position

	_ = c.Unload()
	if track == nil {
		return
	}
	if err := c.Load(ctx, track, sel); err != nil {
		return
	}
	c.Seek(pos)
	if wasPlaying {
		_ = c.Play(ctx, sel)
	}
}

// Unload releases the live handle. Idempotent: calling it on an already
// unloaded controller never fails.
func (c *Controller) Unload() error {
	c.previewUntil = time.Time{}
	c.resumeAfterPreview = false
	c.exclusive.Release(c.ownerID)

	if c.handle == nil {
		c.state = StateUnloaded
		c.track = nil
		return nil
	}

	err := c.handle.Release()
	c.handle = nil
	c.track = nil
	c.state = StateUnloaded
	c.position = 0
	return err
}
