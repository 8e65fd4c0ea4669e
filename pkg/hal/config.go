package hal

import (
	"log/slog"
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// DefaultHeartbeatInterval is how often the heartbeat is emitted.
const DefaultHeartbeatInterval = 3 * time.Second

// HealthProbe reports whether the broker is healthy enough to emit a
// heartbeat.
type HealthProbe func(store Store) bool

// CanaryProbe returns a probe that passes while the store holds a value for
// the global property id.
func CanaryProbe(id prop.PropertyID) HealthProbe {
	return func(store Store) bool {
		return store.ReadValue(&prop.Value{Prop: id}) != nil
	}
}

// Config configures a Broker.
type Config struct {
	// HeartbeatInterval is the heartbeat period. Zero means
	// DefaultHeartbeatInterval.
	HeartbeatInterval time.Duration

	// HealthProbe gates each heartbeat. Nil means
	// CanaryProbe(prop.PerfVehicleSpeed).
	HealthProbe HealthProbe

	// Logger is the optional logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Trace receives a trace event for every result and emitted event.
	// Nil disables tracing.
	Trace log.Logger

	// Clock returns elapsed realtime in nanoseconds. Defaults to
	// prop.ElapsedRealtimeNanos.
	Clock func() int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: DefaultHeartbeatInterval,
		HealthProbe:       CanaryProbe(prop.PerfVehicleSpeed),
		Clock:             prop.ElapsedRealtimeNanos,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = d.HeartbeatInterval
	}
	if c.HealthProbe == nil {
		c.HealthProbe = d.HealthProbe
	}
	if c.Clock == nil {
		c.Clock = d.Clock
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Trace == nil {
		c.Trace = log.NoopLogger{}
	}
	return c
}
