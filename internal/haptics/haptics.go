// Package haptics provides the fire-and-forget feedback pulses used by
// the trim editor. Pulses must never fail; where the terminal offers no
// feedback channel the service degrades to a no-op.
package haptics

import "io"

// Level is the strength of a feedback pulse.
type Level int

const (
	Light   Level = iota // drag start
	Medium               // limit hit
	Success              // drag release
)

// String returns a human-readable level name.
func (l Level) String() string {
	switch l {
	case Medium:
		return "medium"
	case Success:
		return "success"
	default:
		return "light"
	}
}

// Service emits feedback pulses.
type Service interface {
	Pulse(level Level)
}

// Bell emits a terminal bell for medium and success pulses. Light pulses
// are dropped so drag-start does not beep on every gesture.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell-backed service writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Pulse rings the bell. Write failures are ignored.
func (b *Bell) Pulse(level Level) {
	if b == nil || b.w == nil || level == Light {
		return
	}
	_, _ = b.w.Write([]byte("\a"))
}

// Noop discards every pulse.
type Noop struct{}

// Pulse does nothing.
func (Noop) Pulse(Level) {}

var (
	_ Service = (*Bell)(nil)
	_ Service = Noop{}
)
