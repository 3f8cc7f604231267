package core

import (
	"math"
	"testing"
	"time"
)

func TestTimeFromPixel(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		width    float64
		duration time.Duration
		want     time.Duration
	}{
		{"start of track", 0, 100, 180 * time.Second, 0},
		{"end of track", 100, 100, 180 * time.Second, 180 * time.Second},
		{"midpoint", 50, 100, 180 * time.Second, 90 * time.Second},
		{"past right edge clamps", 260, 180, 180 * time.Second, 180 * time.Second},
		{"past left edge clamps", -10, 100, 180 * time.Second, 0},
		{"zero width", 50, 0, 180 * time.Second, 0},
		{"negative width", 50, -10, 180 * time.Second, 0},
		{"NaN x", math.NaN(), 100, 180 * time.Second, 0},
		{"NaN width", 50, math.NaN(), 180 * time.Second, 0},
		{"zero duration", 50, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeFromPixel(tt.x, tt.width, tt.duration)
			if got != tt.want {
				t.Errorf("TimeFromPixel(%v, %v, %v) = %v, want %v",
					tt.x, tt.width, tt.duration, got, tt.want)
			}
		})
	}
}

func TestPixelFromTime(t *testing.T) {
	if got := PixelFromTime(90*time.Second, 100, 180*time.Second); got != 50 {
		t.Errorf("PixelFromTime = %v, want 50", got)
	}
	if got := PixelFromTime(-5*time.Second, 100, 180*time.Second); got != 0 {
		t.Errorf("negative time = %v, want 0", got)
	}
	if got := PixelFromTime(200*time.Second, 100, 180*time.Second); got != 100 {
		t.Errorf("overshoot = %v, want 100", got)
	}
	if got := PixelFromTime(10*time.Second, 0, 180*time.Second); got != 0 {
		t.Errorf("zero width = %v, want 0", got)
	}
}

func TestMapperRoundTrip(t *testing.T) {
	const width = 72.0
	duration := 247 * time.Second

	for x := 0.0; x <= width; x += 3.5 {
		tm := TimeFromPixel(x, width, duration)
		back := PixelFromTime(tm, width, duration)
		if math.Abs(back-x) > 1e-6 {
			t.Errorf("round trip at x=%v: got %v", x, back)
		}
	}
}
