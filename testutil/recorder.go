package testutil

import (
	"sync"

	"github.com/Frebklin/haystack/pipeline"
)

// Recorder collects execution events from a pipeline run. Register its
// Observe method with pipeline.WithObserver.
type Recorder struct {
	mu     sync.Mutex
	events []pipeline.Event
}

// Observe appends one event. Safe for concurrent use.
func (r *Recorder) Observe(ev pipeline.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Trace returns the executed component names in order.
func (r *Recorder) Trace() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.events))
	for i, ev := range r.events {
		names[i] = ev.Component
	}
	return names
}

// Events returns a copy of the collected events in order.
func (r *Recorder) Events() []pipeline.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]pipeline.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards collected events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
