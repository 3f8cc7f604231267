package gesture

import (
	"testing"
	"time"

	"github.com/Godevs04/tunesnip/internal/core"
)

func newTestSet() (*Set, core.Selection) {
	s := NewSet()
	// 60 cells for a 60 second track: 1 cell == 1 second.
	s.SetGeometry(60, 60*time.Second)
	return s, core.NewSelection(60 * time.Second)
}

func TestJitterFilter(t *testing.T) {
	s, sel := newTestSet()
	s.Begin(HandleStart, 10, sel)

	if _, ok := s.Move(11); ok {
		t.Error("1-cell move should be filtered")
	}
	if up, ok := s.Move(12); !ok {
		t.Error("2-cell move should emit")
	} else if up.Time != 12*time.Second {
		t.Errorf("Time = %v, want 12s", up.Time)
	}

	// The filter is relative to the last emitted position.
	if _, ok := s.Move(13); ok {
		t.Error("move within threshold of last emit should be filtered")
	}
	if _, ok := s.Move(14); !ok {
		t.Error("move past threshold should emit")
	}
}

func TestMoveWithoutBegin(t *testing.T) {
	s, _ := newTestSet()
	if _, ok := s.Move(30); ok {
		t.Error("move with no active drag should not emit")
	}
	if _, ok := s.Release(); ok {
		t.Error("release with no active drag should not emit")
	}
}

func TestReleaseEmitsFinalPosition(t *testing.T) {
	s, sel := newTestSet()
	s.Begin(HandleEnd, 40, sel)
	s.Move(45)

	up, ok := s.Release()
	if !ok {
		t.Fatal("release should emit")
	}
	if up.Handle != HandleEnd {
		t.Errorf("Handle = %v, want end", up.Handle)
	}
	if up.Time != 45*time.Second {
		t.Errorf("Time = %v, want 45s", up.Time)
	}
	if s.Dragging() {
		t.Error("set should be idle after release")
	}
}

func TestBothDragSlidesFromBase(t *testing.T) {
	s := NewSet()
	s.SetGeometry(60, 60*time.Second)

	sel := core.NewSelection(60 * time.Second)
	sel.SetStart(10 * time.Second)
	sel.SetEnd(30 * time.Second)

	s.Begin(HandleBoth, 20, sel)
	up, ok := s.Move(25)
	if !ok {
		t.Fatal("move should emit")
	}
	if up.Handle != HandleBoth {
		t.Errorf("Handle = %v, want both", up.Handle)
	}
	// +5 cells == +5s relative to the captured start of 10s.
	if up.Time != 15*time.Second {
		t.Errorf("Time = %v, want 15s", up.Time)
	}

	// Moving backwards past the origin yields a negative candidate;
	// clamping is the selection's job, not the tracker's.
	up, ok = s.Move(5)
	if !ok {
		t.Fatal("move should emit")
	}
	if up.Time != -5*time.Second {
		t.Errorf("Time = %v, want -5s", up.Time)
	}
}

func TestCancel(t *testing.T) {
	s, sel := newTestSet()
	s.Begin(HandleStart, 10, sel)
	s.Cancel()

	if s.Dragging() {
		t.Error("cancel should clear the active drag")
	}
	if _, ok := s.Release(); ok {
		t.Error("release after cancel should not emit")
	}
}

func TestActiveHandle(t *testing.T) {
	s, sel := newTestSet()
	if s.Active() != HandleNone {
		t.Errorf("Active = %v, want none", s.Active())
	}
	s.Begin(HandleEnd, 40, sel)
	if s.Active() != HandleEnd {
		t.Errorf("Active = %v, want end", s.Active())
	}
}
