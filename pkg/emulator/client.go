package emulator

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/propdef"
)

// DefaultQueueSize is the delivery queue capacity used when Config leaves it
// unset.
const DefaultQueueSize = 256

// Config holds emulator configuration.
type Config struct {
	// Logger is the optional logger. Defaults to slog.Default().
	Logger *slog.Logger

	// QueueSize bounds the samples awaiting delivery. A full queue makes
	// SetProperty report TRY_AGAIN.
	QueueSize int
}

// Callback receives samples reported by the vehicle.
type Callback func(v *prop.Value, updateStatus bool)

type sample struct {
	value        *prop.Value
	updateStatus bool
}

// Client is an emulated vehicle.
type Client struct {
	defs   *propdef.Definitions
	logger *slog.Logger

	mu       sync.Mutex
	state    map[prop.Key]*prop.Value
	callback Callback
	started  bool
	stopped  bool
	cancel   context.CancelFunc

	queue chan sample
	wg    sync.WaitGroup
}

// New creates a vehicle whose state starts at the initial values in defs.
func New(defs *propdef.Definitions, cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}

	c := &Client{
		defs:   defs,
		logger: logger,
		state:  make(map[prop.Key]*prop.Value),
		queue:  make(chan sample, size),
	}
	for _, v := range defs.InitialValues() {
		c.state[v.Key()] = v
	}
	return c
}

// AllPropertyConfigs returns the configs of every defined property.
func (c *Client) AllPropertyConfigs() []prop.Config {
	return c.defs.Configs()
}

// RegisterPropertyValueCallback installs the push callback, replacing any
// previous one.
func (c *Client) RegisterPropertyValueCallback(fn func(*prop.Value, bool)) {
	c.mu.Lock()
	c.callback = fn
	c.mu.Unlock()
}

// SetProperty applies a write to the vehicle and queues the resulting sample
// for delivery.
func (c *Client) SetProperty(v *prop.Value, updateStatus bool) error {
	if _, ok := c.defs.Lookup(v.Prop); !ok {
		return fmt.Errorf("%w: vehicle has no property %s", prop.ErrInvalidArg, v.Prop)
	}
	return c.apply(v, updateStatus)
}

// Inject reports a sample that originates in the vehicle itself, such as a
// sensor reading. The sample's status is reported along with its payload.
func (c *Client) Inject(v *prop.Value) error {
	return c.SetProperty(v, true)
}

func (c *Client) apply(v *prop.Value, updateStatus bool) error {
	s := v.Clone()
	if s.Prop.IsGlobal() {
		s.AreaID = 0
	}
	s.Timestamp = prop.ElapsedRealtimeNanos()

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.queue <- sample{value: s, updateStatus: updateStatus}:
	default:
		return fmt.Errorf("%w: vehicle busy", prop.ErrTryAgain)
	}
	c.state[s.Key()] = s.Clone()
	return nil
}

// TriggerSendAllValues queues every current vehicle value as AVAILABLE.
func (c *Client) TriggerSendAllValues() {
	now := prop.ElapsedRealtimeNanos()

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range sortedValues(c.state) {
		s := v.Clone()
		s.Status = prop.StatusAvailable
		s.Timestamp = now
		select {
		case c.queue <- sample{value: s, updateStatus: true}:
		default:
			c.logger.Warn("send-all dropped sample, queue full", "prop", s.Prop, "area", s.AreaID)
		}
	}
}

// Value returns a copy of the current vehicle value of (id, area).
func (c *Client) Value(id prop.PropertyID, area int32) (*prop.Value, bool) {
	if id.IsGlobal() {
		area = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.state[prop.Key{Prop: id, AreaID: area}]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Start begins delivering queued samples. Start is idempotent; calling it
// after Stop is a no-op.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.started = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

// Stop halts delivery and waits for an in-flight callback to return.
func (c *Client) Stop() {
	c.mu.Lock()
	if !c.stopped {
		c.stopped = true
		if c.cancel != nil {
			c.cancel()
		}
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Client) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-c.queue:
			c.deliver(s)
		}
	}
}

func (c *Client) deliver(s sample) {
	c.mu.Lock()
	fn := c.callback
	c.mu.Unlock()

	if fn == nil {
		c.logger.Debug("no callback, sample dropped", "prop", s.value.Prop)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("property callback panicked",
				"prop", s.value.Prop,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn(s.value, s.updateStatus)
}

// Dump writes the vehicle state to w. The only option is "--list", which
// prints property ids and names instead.
func (c *Client) Dump(w io.Writer, options []string) bool {
	list := false
	for _, opt := range options {
		switch opt {
		case "--list":
			list = true
		default:
			fmt.Fprintf(w, "unknown option %q\n", opt)
			return false
		}
	}

	if list {
		for _, p := range c.defs.Properties {
			fmt.Fprintf(w, "0x%08x  %s\n", uint32(p.Config.Prop), p.Name)
		}
		return true
	}

	c.mu.Lock()
	values := sortedValues(c.state)
	c.mu.Unlock()

	fmt.Fprintf(w, "vehicle %q, %d values\n", c.defs.Vehicle, len(values))
	for _, v := range values {
		fmt.Fprintf(w, "  %-28s area=0x%x %s %s\n", c.defs.Name(v.Prop), v.AreaID, v.Status, v.Value)
	}
	return true
}

func sortedValues(m map[prop.Key]*prop.Value) []*prop.Value {
	out := make([]*prop.Value, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *prop.Value) int {
		if c := cmp.Compare(a.Prop, b.Prop); c != 0 {
			return c
		}
		return cmp.Compare(a.AreaID, b.AreaID)
	})
	return out
}
