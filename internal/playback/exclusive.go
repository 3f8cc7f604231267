package playback

import "sync"

// Exclusive coordinates the process-wide "only one thing plays at a time"
// rule. It is created at app start and injected into every controller;
// StopAll is wired to app teardown.
type Exclusive struct {
	mu    sync.Mutex
	stops map[string]func()
}

// NewExclusive creates the coordinator.
func NewExclusive() *Exclusive {
	return &Exclusive{stops: make(map[string]func())}
}

// PlayExclusive registers the owner's stop function and silences every
// other registered owner.
func (e *Exclusive) PlayExclusive(ownerID string, stop func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, s := range e.stops {
		if id != ownerID && s != nil {
			s()
		}
	}
	e.stops[ownerID] = stop
}

// Release removes an owner without stopping it. Called on unload.
func (e *Exclusive) Release(ownerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.stops, ownerID)
}

// StopAll silences every registered owner.
func (e *Exclusive) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, s := range e.stops {
		if s != nil {
			s()
		}
	}
}
