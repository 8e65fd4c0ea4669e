package timer

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/vhal-go/vhal/pkg/prop"
)

// ErrInvalidInterval is returned when registering a non-positive interval.
var ErrInvalidInterval = errors.New("invalid recurrent interval")

// Action receives the keys due on a tick.
type Action func(ids []prop.PropertyID)

// Config holds timer configuration.
type Config struct {
	// Logger is the optional logger. Defaults to slog.Default().
	Logger *slog.Logger
}

type event struct {
	interval time.Duration
	next     time.Time
}

// Timer fires registered events at their intervals.
type Timer struct {
	mu     sync.Mutex
	events map[prop.PropertyID]*event
	action Action
	epoch  time.Time
	logger *slog.Logger

	wake chan struct{}

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	stopped bool
}

// New creates a timer that calls action for due events. Call Start to begin
// delivery.
func New(action Action, cfg Config) *Timer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{
		events: make(map[prop.PropertyID]*event),
		action: action,
		epoch:  time.Now(),
		logger: logger,
		wake:   make(chan struct{}, 1),
	}
}

// Register schedules id every interval, replacing any existing registration.
func (t *Timer) Register(interval time.Duration, id prop.PropertyID) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	t.mu.Lock()
	t.events[id] = &event{
		interval: interval,
		next:     t.nextDeadline(time.Now(), interval),
	}
	t.mu.Unlock()

	t.poke()
	return nil
}

// Unregister removes the event for id. Unknown ids are ignored.
func (t *Timer) Unregister(id prop.PropertyID) {
	t.mu.Lock()
	_, ok := t.events[id]
	delete(t.events, id)
	t.mu.Unlock()

	if ok {
		t.poke()
	}
}

// Interval returns the registered interval of id.
func (t *Timer) Interval(id prop.PropertyID) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ev, ok := t.events[id]
	if !ok {
		return 0, false
	}
	return ev.interval, true
}

// Count returns the number of registered events.
func (t *Timer) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.events)
}

// Start begins delivering events on a background goroutine.
// Start is idempotent; calling it after Stop is a no-op.
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	if t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.started = true
	ctx, t.cancel = context.WithCancel(ctx)
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		t.run(ctx)
	}()
}

// Stop halts delivery and waits for an in-flight action to return.
// Stop is idempotent and safe to call before Start.
func (t *Timer) Stop() {
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		if t.cancel != nil {
			t.cancel()
		}
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Timer) poke() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// nextDeadline returns the first multiple of interval after now, counted
// from the epoch.
func (t *Timer) nextDeadline(now time.Time, interval time.Duration) time.Time {
	elapsed := now.Sub(t.epoch)
	return t.epoch.Add((elapsed/interval + 1) * interval)
}

func (t *Timer) run(ctx context.Context) {
	sleep := time.NewTimer(time.Hour)
	defer sleep.Stop()

	for {
		wait, ok := t.untilNext()
		if !ok {
			wait = time.Hour
		}
		sleep.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-t.wake:
			if !sleep.Stop() {
				select {
				case <-sleep.C:
				default:
				}
			}
		case <-sleep.C:
			if due := t.collectDue(time.Now()); len(due) > 0 {
				t.deliver(due)
			}
		}
	}
}

func (t *Timer) untilNext() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var earliest time.Time
	for _, ev := range t.events {
		if earliest.IsZero() || ev.next.Before(earliest) {
			earliest = ev.next
		}
	}
	if earliest.IsZero() {
		return 0, false
	}
	return max(time.Until(earliest), 0), true
}

func (t *Timer) collectDue(now time.Time) []prop.PropertyID {
	t.mu.Lock()
	defer t.mu.Unlock()

	var due []prop.PropertyID
	for id, ev := range t.events {
		if ev.next.After(now) {
			continue
		}
		due = append(due, id)
		ev.next = t.nextDeadline(now, ev.interval)
	}
	slices.Sort(due)
	return due
}

func (t *Timer) deliver(due []prop.PropertyID) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("recurrent timer action panicked",
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	t.action(due)
}
