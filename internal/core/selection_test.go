package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewSelectionDefaults(t *testing.T) {
	sel := NewSelection(180 * time.Second)
	if sel.Start != 0 {
		t.Errorf("Start = %v, want 0", sel.Start)
	}
	if sel.End != 60*time.Second {
		t.Errorf("End = %v, want 60s", sel.End)
	}

	short := NewSelection(12 * time.Second)
	if short.End != 12*time.Second {
		t.Errorf("short track End = %v, want 12s", short.End)
	}
}

func TestSetEndClampsToTrackDuration(t *testing.T) {
	sel := Selection{Start: 150 * time.Second, End: 170 * time.Second, Duration: 180 * time.Second}

	// Drag the end handle to a pixel mapping past the track length.
	sel.SetEnd(260 * time.Second)
	if sel.End != 180*time.Second {
		t.Errorf("End = %v, want 180s", sel.End)
	}
}

func TestSetStartRejectsBelowMinimum(t *testing.T) {
	sel := NewSelection(180 * time.Second)
	sel.SetEnd(10 * time.Second)
	sel.SetStart(9500 * time.Millisecond) // span exactly at minimum

	// Movement that would shrink the span to 0.3s is rejected; the
	// selection stays at the last valid value.
	sel.SetStart(9700 * time.Millisecond)
	if sel.Start != 9500*time.Millisecond {
		t.Errorf("Start = %v, want 9.5s", sel.Start)
	}
	if sel.Span() != MinClipDuration {
		t.Errorf("Span = %v, want %v", sel.Span(), MinClipDuration)
	}
	if sel.Limit() != LimitAtMinimum {
		t.Errorf("Limit = %v, want at-minimum", sel.Limit())
	}
}

func TestSetStartPullsEndWithinMax(t *testing.T) {
	sel := Selection{Start: 70 * time.Second, End: 120 * time.Second, Duration: 300 * time.Second}
	sel.SetStart(10 * time.Second)
	if sel.Start != 10*time.Second {
		t.Errorf("Start = %v, want 10s", sel.Start)
	}
	if sel.End != 70*time.Second {
		t.Errorf("End = %v, want pulled down to 70s", sel.End)
	}
	if sel.Limit() != LimitAtMaximum {
		t.Errorf("Limit = %v, want at-maximum", sel.Limit())
	}
}

func TestShiftPreservesSpan(t *testing.T) {
	sel := NewSelection(180 * time.Second)
	sel.SetStart(10 * time.Second)
	sel.SetEnd(40 * time.Second)
	span := sel.Span()

	sel.Shift(100 * time.Second)
	if sel.Start != 100*time.Second || sel.End != 130*time.Second {
		t.Errorf("shifted to (%v, %v), want (100s, 130s)", sel.Start, sel.End)
	}
	if sel.Span() != span {
		t.Errorf("Span changed: %v != %v", sel.Span(), span)
	}

	// Slides clamp against the end of the track.
	sel.Shift(175 * time.Second)
	if sel.End != 180*time.Second {
		t.Errorf("End = %v, want 180s", sel.End)
	}
	if sel.Span() != span {
		t.Errorf("Span changed at edge: %v != %v", sel.Span(), span)
	}
}

func TestDoubleTapSetsBoundary(t *testing.T) {
	sel := NewSelection(180 * time.Second)
	sel.SetStart(30 * time.Second)

	// Double-tap on the right half at 90s sets the end.
	sel.SetBoundaryAt(90*time.Second, false)
	if sel.End != 90*time.Second {
		t.Errorf("End = %v, want 90s", sel.End)
	}

	// Double-tap on the left half sets the start.
	sel.SetBoundaryAt(45*time.Second, true)
	if sel.Start != 45*time.Second {
		t.Errorf("Start = %v, want 45s", sel.Start)
	}
}

func TestLimitClassification(t *testing.T) {
	tests := []struct {
		name string
		span time.Duration
		want LimitState
	}{
		{"normal", 30 * time.Second, LimitNormal},
		{"just above approach margin", 700 * time.Millisecond, LimitNormal},
		{"approaching minimum", 550 * time.Millisecond, LimitApproachingMin},
		{"at approach margin", 600 * time.Millisecond, LimitApproachingMin},
		{"at minimum", 500 * time.Millisecond, LimitAtMinimum},
		{"at maximum", 60 * time.Second, LimitAtMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Selection{Start: 0, End: tt.span, Duration: 300 * time.Second}
			if got := sel.classify(); got != tt.want {
				t.Errorf("classify(span=%v) = %v, want %v", tt.span, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	sel := Selection{Start: 5 * time.Second, End: 5200 * time.Millisecond, Duration: 180 * time.Second}
	if err := sel.Validate(); !errors.Is(err, ErrClipTooShort) {
		t.Errorf("Validate = %v, want ErrClipTooShort", err)
	}

	sel = NewSelection(180 * time.Second)
	if err := sel.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestSubMinimumTrackKeepsEndWithinDuration(t *testing.T) {
	// 300ms track: shorter than the minimum clip. No drag may push End
	// past the track length; confirmation stays blocked.
	sel := NewSelection(300 * time.Millisecond)

	if sel.End != 300*time.Millisecond {
		t.Fatalf("End = %v, want track duration", sel.End)
	}
	if sel.Limit() != LimitAtMinimum {
		t.Errorf("Limit = %v, want at-minimum", sel.Limit())
	}

	sel.SetEnd(10 * time.Second)
	if sel.End != 300*time.Millisecond {
		t.Errorf("End = %v, want clamped to track duration", sel.End)
	}
	sel.SetEnd(0)
	if sel.End != 300*time.Millisecond {
		t.Errorf("End = %v, want held at track duration", sel.End)
	}

	if err := sel.Validate(); err != ErrClipTooShort {
		t.Errorf("Validate = %v, want ErrClipTooShort", err)
	}
}

func TestInvariantsUnderDragSequences(t *testing.T) {
	sel := NewSelection(240 * time.Second)

	// An adversarial mix of drags must never break the invariants.
	moves := []func(){
		func() { sel.SetStart(-40 * time.Second) },
		func() { sel.SetEnd(500 * time.Second) },
		func() { sel.SetStart(239 * time.Second) },
		func() { sel.SetEnd(0) },
		func() { sel.Shift(-10 * time.Second) },
		func() { sel.Shift(1000 * time.Second) },
		func() { sel.SetBoundaryAt(120*time.Second, false) },
		func() { sel.SetBoundaryAt(119*time.Second, true) },
	}

	for i, move := range moves {
		move()
		if span := sel.Span(); span < MinClipDuration || span > MaxClipDuration {
			t.Fatalf("move %d: span %v outside [%v, %v]", i, span, MinClipDuration, MaxClipDuration)
		}
		if sel.Start < 0 || sel.End > sel.Duration || sel.Start >= sel.End {
			t.Fatalf("move %d: bounds (%v, %v) invalid", i, sel.Start, sel.End)
		}
	}
}
