// Package gesture implements the drag state machine for the clip handles.
//
// Three independent trackers exist: one per boundary handle and one for
// whole-selection drags. Each converts pixel motion into a candidate time
// via the timeline mapper; committing the value is the selection's job.
package gesture

import (
	"time"

	"github.com/Godevs04/tunesnip/internal/core"
)

// MinDragDelta is the jitter filter threshold. Motion below this many
// cells is dropped so sub-pixel tremor never floods the selection.
const MinDragDelta = 2

// Handle identifies which affordance a drag operates on.
type Handle int

const (
	HandleNone Handle = iota
	HandleStart
	HandleEnd
	HandleBoth
)

// String returns a human-readable handle name.
func (h Handle) String() string {
	switch h {
	case HandleStart:
		return "start"
	case HandleEnd:
		return "end"
	case HandleBoth:
		return "both"
	default:
		return "none"
	}
}

// State represents the tracker state.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// Update is a snapped candidate emitted by a tracker. Time carries the
// candidate boundary time (start or end), or the candidate start for a
// whole-selection drag.
type Update struct {
	Handle Handle
	Time   time.Duration
}

// Tracker is the drag state machine for a single handle.
type Tracker struct {
	handle Handle
	state  State
	lastX  int
	origX  int

	// Selection captured at gesture start; both-drags slide relative to
	// it so accumulated deltas do not compound clamping errors.
	baseStart time.Duration
}

// NewTracker creates an idle tracker for the given handle.
func NewTracker(handle Handle) *Tracker {
	return &Tracker{handle: handle}
}

// Handle returns the handle this tracker operates on.
func (t *Tracker) Handle() Handle {
	return t.handle
}

// Dragging returns true while a gesture is active.
func (t *Tracker) Dragging() bool {
	return t.state == StateDragging
}

// Begin starts a drag at pixel x with the current selection.
func (t *Tracker) Begin(x int, sel core.Selection) {
	t.state = StateDragging
	t.origX = x
	t.lastX = x
	t.baseStart = sel.Start
}

// Move processes a pointer-move event. It returns the pixel position to
// resolve and true only when the motion clears the jitter threshold.
func (t *Tracker) Move(x int) (int, bool) {
	if t.state != StateDragging {
		return 0, false
	}
	delta := x - t.lastX
	if delta < 0 {
		delta = -delta
	}
	if delta < MinDragDelta {
		return 0, false
	}
	t.lastX = x
	return x, true
}

// Release ends the gesture. It returns the final pixel position and true
// if a drag was in progress.
func (t *Tracker) Release() (int, bool) {
	if t.state != StateDragging {
		return 0, false
	}
	t.state = StateIdle
	return t.lastX, true
}

// Set owns the three handle trackers and the timeline geometry used to
// resolve pixel positions into candidate times.
type Set struct {
	width    float64
	duration time.Duration

	trackers map[Handle]*Tracker
	active   *Tracker
}

// NewSet creates the tracker set.
func NewSet() *Set {
	return &Set{
		trackers: map[Handle]*Tracker{
			HandleStart: NewTracker(HandleStart),
			HandleEnd:   NewTracker(HandleEnd),
			HandleBoth:  NewTracker(HandleBoth),
		},
	}
}

// SetGeometry updates the rendered timeline width and track duration.
func (s *Set) SetGeometry(width float64, duration time.Duration) {
	s.width = width
	s.duration = duration
}

// Active returns the handle currently being dragged, or HandleNone.
func (s *Set) Active() Handle {
	if s.active == nil {
		return HandleNone
	}
	return s.active.handle
}

// Dragging returns true while any handle is mid-drag.
func (s *Set) Dragging() bool {
	return s.active != nil
}

// Begin starts a drag on the given handle at timeline-relative pixel x.
func (s *Set) Begin(h Handle, x int, sel core.Selection) {
	t, ok := s.trackers[h]
	if !ok {
		return
	}
	t.Begin(x, sel)
	s.active = t
}

// Move feeds a pointer-move event to the active tracker. The returned
// update carries the snapped candidate time; ok is false while the
// motion is within the jitter threshold or no drag is active.
func (s *Set) Move(x int) (Update, bool) {
	if s.active == nil {
		return Update{}, false
	}
	px, ok := s.active.Move(x)
	if !ok {
		return Update{}, false
	}
	return s.resolve(s.active, px), true
}

// Release ends the active drag. The returned update carries the final
// candidate so the caller can run the drag-release preview.
func (s *Set) Release() (Update, bool) {
	if s.active == nil {
		return Update{}, false
	}
	t := s.active
	s.active = nil
	px, ok := t.Release()
	if !ok {
		return Update{}, false
	}
	return s.resolve(t, px), true
}

// Cancel aborts any active drag without emitting an update.
func (s *Set) Cancel() {
	if s.active != nil {
		s.active.Release()
		s.active = nil
	}
}

func (s *Set) resolve(t *Tracker, px int) Update {
	switch t.handle {
	case HandleBoth:
		// Pixel delta from the gesture origin, converted to a time
		// delta and applied to the selection captured at drag start.
		dt := core.TimeFromPixel(float64(px), s.width, s.duration) -
			core.TimeFromPixel(float64(t.origX), s.width, s.duration)
		return Update{Handle: t.handle, Time: t.baseStart + dt}
	default:
		return Update{Handle: t.handle, Time: core.TimeFromPixel(float64(px), s.width, s.duration)}
	}
}
