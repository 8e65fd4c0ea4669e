// Package store holds the current value and config of every vehicle property.
//
// Store is keyed by (property, area). Global properties always use area 0,
// whatever area id a caller passes. All methods are safe for concurrent use
// and copy values on the way in and out, so callers never share memory with
// the store.
//
// # Write Semantics
//
// WriteValue reports whether the write is an observable change:
//   - writes for properties without a registered config are dropped
//   - writes older than the stored timestamp are dropped
//   - with updateStatus false the stored status is kept
//   - a write that leaves payload and status unchanged only refreshes the
//     timestamp and reports false
package store
