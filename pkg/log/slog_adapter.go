package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level, with
// errors at Warn level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("broker_id", event.BrokerID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
		slog.String("op", event.Operation.String()),
		slog.String("prop", event.Prop.String()),
	}

	if event.AreaID != 0 {
		attrs = append(attrs, slog.Int64("area", int64(event.AreaID)))
	}
	if event.Status != nil {
		attrs = append(attrs, slog.String("status", event.Status.String()))
	}
	if event.Value != nil {
		attrs = append(attrs,
			slog.String("value_status", event.Value.Status.String()),
			slog.String("value", event.Value.Value.String()),
		)
	}
	if event.SampleRate != 0 {
		attrs = append(attrs, slog.Float64("rate_hz", float64(event.SampleRate)))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("detail", event.Message))
	}

	level := slog.LevelDebug
	if event.Category == CategoryError {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
