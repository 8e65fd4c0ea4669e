// Package hal implements the vehicle property broker.
//
// A Broker sits between callers and three collaborators: a property Store
// holding current values and configs, a hardware Client that is the source
// of truth for device state, and a recurrent Scheduler. Callers get, set,
// subscribe and unsubscribe; the broker validates writes before forwarding
// them to the client, writes hardware pushes into the store, and emits
// events for changed values, sampled continuous properties and the
// liveness heartbeat.
//
// # Concurrency
//
// Every exported method is safe for concurrent use. The broker never holds
// its own lock while calling into the store or client; the store is
// responsible for linearizing writes per (property, area). Subscription
// changes and Close hold the broker lock across their scheduler calls, so
// the subscription table always matches what is registered. A Scheduler
// must therefore not call back into Subscribe, Unsubscribe or Close while
// registering.
//
// # Writes
//
// Set never updates the store. It forwards a validated value to the client,
// and the store changes only when the client reports the resulting sample
// through the push callback.
package hal
