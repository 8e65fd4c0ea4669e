package hal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// Broker is the vehicle property broker.
type Broker struct {
	// ID identifies this broker instance in trace logs.
	ID string

	store     Store
	client    Client
	scheduler Scheduler

	heartbeatInterval time.Duration
	probe             HealthProbe
	clock             func() int64
	logger            *slog.Logger
	trace             log.Logger

	sink     atomic.Pointer[func(*prop.Value)]
	lastBeat atomic.Int64

	mu      sync.Mutex
	subs    map[prop.PropertyID]float32
	started bool
	closed  bool
}

// New creates a broker, registers every config the client discovers with
// the store and installs the push callback. Call Start to populate the
// store and begin the heartbeat.
func New(store Store, client Client, scheduler Scheduler, cfg Config) (*Broker, error) {
	if store == nil || client == nil || scheduler == nil {
		return nil, errors.New("hal: store, client and scheduler are required")
	}
	if cfg.HeartbeatInterval < 0 {
		return nil, fmt.Errorf("hal: negative heartbeat interval %v", cfg.HeartbeatInterval)
	}
	cfg = cfg.withDefaults()

	b := &Broker{
		ID:                uuid.New().String(),
		store:             store,
		client:            client,
		scheduler:         scheduler,
		heartbeatInterval: cfg.HeartbeatInterval,
		probe:             cfg.HealthProbe,
		clock:             cfg.Clock,
		trace:             cfg.Trace,
		subs:              make(map[prop.PropertyID]float32),
	}
	b.logger = cfg.Logger.With("broker_id", b.ID)

	configs := client.AllPropertyConfigs()
	for _, c := range configs {
		store.RegisterProperty(c, nil)
	}
	client.RegisterPropertyValueCallback(b.OnPropertyValue)

	b.logger.Info("broker created", "properties", len(configs))
	return b, nil
}

// Start writes an UNAVAILABLE placeholder for every property instance, asks
// the client to report all current values and registers the heartbeat.
// Calling Start again is a no-op.
func (b *Broker) Start() error {
	b.mu.Lock()
	if b.started || b.closed {
		b.mu.Unlock()
		return nil
	}
	b.started = true
	b.mu.Unlock()

	placeholders := 0
	for _, cfg := range b.store.AllConfigs() {
		for _, area := range cfg.Areas() {
			b.store.WriteValue(&prop.Value{
				Prop:   cfg.Prop,
				AreaID: area,
				Status: prop.StatusUnavailable,
			}, true)
			placeholders++
		}
	}

	b.client.TriggerSendAllValues()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	if err := b.scheduler.Register(b.heartbeatInterval, prop.VhalHeartbeat); err != nil {
		return fmt.Errorf("hal: registering heartbeat: %w", err)
	}

	b.logger.Info("broker started",
		"placeholders", placeholders,
		"heartbeat", b.heartbeatInterval,
	)
	return nil
}

// Close unregisters the heartbeat and every subscription still active.
// It is safe to call Close multiple times.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	if b.started {
		b.scheduler.Unregister(prop.VhalHeartbeat)
	}
	n := len(b.subs)
	for id := range b.subs {
		b.scheduler.Unregister(id)
	}
	clear(b.subs)

	b.logger.Info("broker closed", "subscriptions", n)
	return nil
}

// OnEvent installs the sink that receives every emitted value, replacing any
// previous sink. A nil fn discards events.
func (b *Broker) OnEvent(fn func(v *prop.Value)) {
	if fn == nil {
		b.sink.Store(nil)
		return
	}
	b.sink.Store(&fn)
}

// ListProperties returns every registered config, sorted by property id.
func (b *Broker) ListProperties() []prop.Config {
	return b.store.AllConfigs()
}

// Dump writes the client's diagnostic dump to w.
func (b *Broker) Dump(w io.Writer, options []string) bool {
	return b.client.Dump(w, options)
}
