// Package timer implements the recurrent scheduler that drives continuous
// property sampling and the heartbeat.
//
// # Registration
//
// Events are keyed by property id. Registering a key that is already
// registered replaces its interval; there is never more than one event per
// key. Unregistering an unknown key is a no-op.
//
// # Coalescing
//
// Deadlines are aligned to multiples of the event interval measured from the
// timer's epoch, so events sharing an interval fall due on the same tick.
// All keys due on a tick are delivered in one Action call, sorted by id.
//
// # Delivery
//
// Actions run on a single goroutine owned by the Timer. A slow action delays
// later ticks; missed ticks are skipped rather than replayed. An event that is
// unregistered while a tick is being delivered may still appear in that one
// tick.
package timer
