// Package log provides a machine-readable trace of broker activity.
//
// The trace is separate from operational logging (slog): it records every
// caller request with its outcome and every value the broker emits, in a
// form that can be filtered and replayed by the vhal-trace tool.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.Trace, _ = log.NewFileLogger("/var/log/vhal/broker.vtrace")
//
//	// Both: use MultiLogger
//	cfg.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Categories
//
//   - Result: a caller operation (get, set, subscribe, unsubscribe) and the
//     status code it returned
//   - Event: a value delivered to the event sink, from a hardware push, a
//     continuous sampling tick or the heartbeat
//   - Error: an internal inconsistency that was logged and skipped
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys, using
// the .vtrace extension.
package log
