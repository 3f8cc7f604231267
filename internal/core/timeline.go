package core

import (
	"math"
	"time"
)

// TimeFromPixel converts a horizontal pixel offset within a track of the
// given rendered width into a playback time, clamped to [0, duration].
// Invalid inputs (NaN, non-positive width) clamp to 0.
func TimeFromPixel(x, width float64, duration time.Duration) time.Duration {
	if width <= 0 || math.IsNaN(width) || math.IsNaN(x) || duration <= 0 {
		return 0
	}
	frac := x / width
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return time.Duration(frac * float64(duration))
}

// PixelFromTime is the inverse of TimeFromPixel: it converts a playback
// time into a pixel offset within [0, width].
func PixelFromTime(t time.Duration, width float64, duration time.Duration) float64 {
	if width <= 0 || math.IsNaN(width) || duration <= 0 {
		return 0
	}
	if t < 0 {
		t = 0
	}
	if t > duration {
		t = duration
	}
	return float64(t) / float64(duration) * width
}
