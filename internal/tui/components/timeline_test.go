package components

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0:00.0"},
		{"negative clamps", -time.Second, "0:00.0"},
		{"sub-second", 500 * time.Millisecond, "0:00.5"},
		{"whole seconds", 9*time.Second + 900*time.Millisecond, "0:09.9"},
		{"over a minute", 90*time.Second + 300*time.Millisecond, "1:30.3"},
		{"long track", 10 * time.Minute, "10:00.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.d); got != tt.want {
				t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestInnerWidth(t *testing.T) {
	tl := NewTimeline()

	if got := tl.InnerWidth(80); got != 76 {
		t.Errorf("InnerWidth(80) = %d, want 76", got)
	}

	// Narrow panels clamp to the minimum usable strip.
	if got := tl.InnerWidth(10); got != 16 {
		t.Errorf("InnerWidth(10) = %d, want 16", got)
	}
}

func TestWaveHeightsStable(t *testing.T) {
	a := waveHeights("track-1", 40)
	b := waveHeights("track-1", 40)

	if len(a) != 40 {
		t.Fatalf("len = %d, want 40", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("heights not stable at cell %d: %d vs %d", i, a[i], b[i])
		}
		if a[i] < 0 || a[i] >= len(waveGlyphs) {
			t.Fatalf("height %d at cell %d out of glyph range", a[i], i)
		}
	}
}

func TestWaveHeightsVaryByTrack(t *testing.T) {
	a := waveHeights("track-1", 64)
	b := waveHeights("track-2", 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different tracks produced identical waveforms")
	}
}

func TestCellForClampsToStrip(t *testing.T) {
	dur := 3 * time.Minute

	if got := cellFor(0, 40, dur); got != 0 {
		t.Errorf("cellFor(0) = %d, want 0", got)
	}
	if got := cellFor(dur, 40, dur); got != 39 {
		t.Errorf("cellFor(duration) = %d, want 39", got)
	}
	if got := cellFor(dur*2, 40, dur); got != 39 {
		t.Errorf("cellFor(past end) = %d, want 39", got)
	}
}
