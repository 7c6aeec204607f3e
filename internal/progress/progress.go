// Package progress exposes the single-method progress-reporting contract
// of design note §9: "expose as a small interface with one method; the
// core invokes synchronously with a stage tag and a small struct payload."
// Grounded on original_source/backend/kka_backend/services/progress.py's
// touch_progress/mark_success/mark_failure contract, collapsed from a
// threaded in-memory job registry (out of scope: that's HTTP-surface
// plumbing) down to the synchronous callback the design note calls for.
package progress

// Event is the payload passed to a Reporter at a stage boundary.
type Event struct {
	Stage   string
	Message string
	Percent float64
}

// Reporter receives progress events from a planning call. Implementations
// invoked from a single planning thread need not be thread-safe; an
// implementation adapted to a multi-threaded host is the only place that
// constraint applies (spec.md §5).
type Reporter interface {
	Report(Event)
}

// Noop is a Reporter that discards every event; the default, and what
// tests use.
type Noop struct{}

func (Noop) Report(Event) {}

// Func adapts a plain function to the Reporter interface.
type Func func(Event)

func (f Func) Report(e Event) { f(e) }
