// Package clock schedules delayed callbacks onto a single event loop.
//
// All lesson and mini-game timers go through a Scheduler. Callbacks never run
// concurrently with each other: the real Loop hands them to the UI event loop
// over a channel, and Manual runs them inline when a test advances time.
//
// Stale callbacks are dropped with a Generation counter rather than by
// cancelling timer handles. Every state transition bumps the counter, and a
// callback scheduled through Generation.After only runs if the counter still
// holds the value it captured.
package clock

import "time"

// Scheduler runs fn once after d has elapsed, on the caller's event loop.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Generation is a monotonically increasing transition counter.
// The zero value is ready to use.
type Generation struct {
	n uint64
}

// Next invalidates every callback scheduled so far and returns the new value.
func (g *Generation) Next() uint64 {
	g.n++
	return g.n
}

// Current returns the current value.
func (g *Generation) Current() uint64 {
	return g.n
}

// Valid reports whether token is still the current value.
func (g *Generation) Valid(token uint64) bool {
	return token == g.n
}

// After schedules fn on s, bound to the current generation. fn is skipped if
// Next is called before the delay elapses.
func (g *Generation) After(s Scheduler, d time.Duration, fn func()) {
	token := g.n
	s.After(d, func() {
		if g.Valid(token) {
			fn()
		}
	})
}
