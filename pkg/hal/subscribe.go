package hal

import (
	"fmt"
	"maps"
	"math"
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// Subscribe samples a continuous property at rateHz, replacing the rate of
// an earlier subscription. The rate must lie within the config's sample
// rate bounds, inclusive.
func (b *Broker) Subscribe(id prop.PropertyID, rateHz float32) error {
	err := b.subscribe(id, rateHz)
	b.traceResult(log.OpSubscribe, id, 0, nil, rateHz, err)
	return err
}

func (b *Broker) subscribe(id prop.PropertyID, rateHz float32) error {
	cfg, err := b.continuousConfig(id)
	if err != nil {
		return err
	}
	// Written so that NaN fails the check.
	if !(rateHz >= cfg.MinSampleRate && rateHz <= cfg.MaxSampleRate) {
		return fmt.Errorf("%w: rate %v Hz outside [%v, %v]", prop.ErrInvalidArg, rateHz, cfg.MinSampleRate, cfg.MaxSampleRate)
	}
	if rateHz <= 0 || math.IsInf(float64(rateHz), 1) {
		return fmt.Errorf("%w: rate %v Hz is not a positive finite value", prop.ErrInvalidArg, rateHz)
	}
	period := samplePeriod(rateHz)
	if period <= 0 {
		return fmt.Errorf("%w: rate %v Hz is finer than the scheduler resolution", prop.ErrInvalidArg, rateHz)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("%w: broker closed", prop.ErrNotAvailable)
	}
	if err := b.scheduler.Register(period, id); err != nil {
		return fmt.Errorf("%w: registering %s: %v", prop.ErrInternal, id, err)
	}
	b.subs[id] = rateHz
	return nil
}

// Unsubscribe stops sampling a continuous property. Unsubscribing a property
// that is not subscribed succeeds.
func (b *Broker) Unsubscribe(id prop.PropertyID) error {
	err := b.unsubscribe(id)
	b.traceResult(log.OpUnsubscribe, id, 0, nil, 0, err)
	return err
}

func (b *Broker) unsubscribe(id prop.PropertyID) error {
	if _, err := b.continuousConfig(id); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.scheduler.Unregister(id)
	delete(b.subs, id)
	return nil
}

// Subscriptions returns the active sample rates in Hz.
func (b *Broker) Subscriptions() map[prop.PropertyID]float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.subs)
}

func (b *Broker) continuousConfig(id prop.PropertyID) (*prop.Config, error) {
	cfg := b.store.Config(id)
	if cfg == nil {
		return nil, fmt.Errorf("%w: unknown property %s", prop.ErrInvalidArg, id)
	}
	if !cfg.IsContinuous() {
		return nil, fmt.Errorf("%w: %s is %s, not continuous", prop.ErrInvalidArg, id, cfg.ChangeMode)
	}
	return cfg, nil
}

func samplePeriod(rateHz float32) time.Duration {
	return time.Duration(float64(time.Second) / float64(rateHz))
}
