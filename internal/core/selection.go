package core

import (
	"errors"
	"time"
)

// Validation failures surfaced at confirm time.
var (
	ErrClipTooShort     = errors.New("clip is shorter than the minimum duration")
	ErrInvalidSelection = errors.New("invalid selection bounds")
)

// Clip duration invariants. A selection can never shrink below
// MinClipDuration or grow beyond MaxClipDuration.
const (
	MinClipDuration = 500 * time.Millisecond
	MaxClipDuration = 60 * time.Second

	// Span within this margin of the minimum is reported as approaching.
	minApproachMargin = 100 * time.Millisecond
)

// LimitState classifies how close the current clip span is to its
// duration bounds. Feedback only; it never changes the selection value.
type LimitState int

const (
	LimitNormal LimitState = iota
	LimitApproachingMin
	LimitAtMinimum
	LimitAtMaximum
)

// String returns a human-readable name for the limit state.
func (s LimitState) String() string {
	switch s {
	case LimitApproachingMin:
		return "approaching-min"
	case LimitAtMinimum:
		return "at-minimum"
	case LimitAtMaximum:
		return "at-maximum"
	default:
		return "normal"
	}
}

// Selection holds the clip bounds [Start, End] within a track. All
// mutation goes through its methods, which enforce the clip-duration
// invariants under every input path.
type Selection struct {
	Start    time.Duration
	End      time.Duration
	Duration time.Duration // total track duration

	limit LimitState
}

// NewSelection returns the default selection for a freshly chosen track:
// (0, min(duration, MaxClipDuration)).
func NewSelection(duration time.Duration) Selection {
	end := duration
	if end > MaxClipDuration {
		end = MaxClipDuration
	}
	s := Selection{Start: 0, End: end, Duration: duration}
	s.limit = s.classify()
	return s
}

// Span returns the current clip length.
func (s Selection) Span() time.Duration {
	return s.End - s.Start
}

// Limit returns the limit state computed by the last mutation.
func (s Selection) Limit() LimitState {
	return s.limit
}

// AtLimit reports whether the last mutation hit a duration bound.
func (s Selection) AtLimit() bool {
	return s.limit == LimitAtMinimum || s.limit == LimitAtMaximum
}

// SetStart moves the start boundary to the candidate time, clamped so the
// clip stays within its duration bounds. If the resulting span would
// exceed the maximum, the end is pulled down to start+max.
func (s *Selection) SetStart(t time.Duration) {
	t = clampDur(t, 0, s.End-MinClipDuration)
	s.Start = t
	if s.End-s.Start > MaxClipDuration {
		s.End = s.Start + MaxClipDuration
	}
	s.limit = s.classify()
}

// SetEnd moves the end boundary, symmetric to SetStart. On a track
// shorter than the minimum clip duration the end can only sit at the
// track end; the undersized span is then caught by Validate.
func (s *Selection) SetEnd(t time.Duration) {
	max := s.Start + MaxClipDuration
	if max > s.Duration {
		max = s.Duration
	}
	min := s.Start + MinClipDuration
	if min > max {
		min = max
	}
	t = clampDur(t, min, max)
	s.End = t
	s.limit = s.classify()
}

// Shift slides the whole selection so that it starts at the candidate
// time, preserving the span and clamping both bounds to [0, Duration].
func (s *Selection) Shift(start time.Duration) {
	span := s.Span()
	start = clampDur(start, 0, s.Duration-span)
	s.Start = start
	s.End = start + span
	s.limit = s.classify()
}

// SetBoundaryAt implements double-tap-to-set: a tap on the left half of
// the track sets the start, the right half sets the end, under the same
// clamping as a drag.
func (s *Selection) SetBoundaryAt(t time.Duration, leftHalf bool) {
	if leftHalf {
		s.SetStart(t)
		return
	}
	s.SetEnd(t)
}

// Validate reports whether the selection may be confirmed.
func (s Selection) Validate() error {
	if s.Span() < MinClipDuration {
		return ErrClipTooShort
	}
	if s.Start < 0 || s.End > s.Duration || s.Start >= s.End {
		return ErrInvalidSelection
	}
	return nil
}

// classify maps the current span onto a limit state.
func (s Selection) classify() LimitState {
	span := s.Span()
	switch {
	case span <= MinClipDuration:
		return LimitAtMinimum
	case span <= MinClipDuration+minApproachMargin:
		return LimitApproachingMin
	case span >= MaxClipDuration:
		return LimitAtMaximum
	default:
		return LimitNormal
	}
}

func clampDur(v, lo, hi time.Duration) time.Duration {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
