package hal

import (
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// OnPropertyValue records a sample reported by the client and emits it when
// it changed the store.
func (b *Broker) OnPropertyValue(v *prop.Value, updateStatus bool) {
	owned := prop.Obtain(v)
	if b.store.WriteValue(owned, updateStatus) {
		b.emit(log.OpPush, owned)
	}
}

// OnTimer handles the property ids due on a scheduler tick. Continuous
// properties emit every stored instance and the heartbeat id emits a
// heartbeat. Any other id is logged and skipped.
func (b *Broker) OnTimer(ids []prop.PropertyID) {
	for _, id := range ids {
		cfg := b.store.Config(id)
		switch {
		case cfg != nil && cfg.IsContinuous():
			now := b.clock()
			for _, v := range b.store.ReadValuesForProperty(id) {
				v.Timestamp = now
				b.emit(log.OpTick, v)
			}
		case id == prop.VhalHeartbeat:
			b.heartbeat()
		default:
			b.logger.Warn("timer tick for property that is not continuous", "prop", id)
			b.trace.Log(log.Event{
				Timestamp: time.Now(),
				BrokerID:  b.ID,
				Direction: log.DirectionIn,
				Category:  log.CategoryError,
				Operation: log.OpTick,
				Prop:      id,
				Message:   "not continuous",
			})
		}
	}
}

func (b *Broker) heartbeat() {
	if !b.probe(b.store) {
		b.logger.Debug("health probe failed, heartbeat skipped")
		return
	}

	v := prop.ObtainInt64(b.nextUptime())
	v.Prop = prop.VhalHeartbeat
	v.Status = prop.StatusAvailable
	v.Timestamp = b.clock()
	b.emit(log.OpHeartbeat, v)
}

// nextUptime returns the uptime in milliseconds, bumped past the previous
// heartbeat so payloads strictly increase.
func (b *Broker) nextUptime() int64 {
	uptime := b.clock() / int64(time.Millisecond)
	for {
		last := b.lastBeat.Load()
		next := max(uptime, last+1)
		if b.lastBeat.CompareAndSwap(last, next) {
			return next
		}
	}
}

func (b *Broker) emit(op log.Operation, v *prop.Value) {
	b.trace.Log(log.Event{
		Timestamp: time.Now(),
		BrokerID:  b.ID,
		Direction: log.DirectionOut,
		Category:  log.CategoryEvent,
		Operation: op,
		Prop:      v.Prop,
		AreaID:    v.AreaID,
		Value:     v,
	})

	if fn := b.sink.Load(); fn != nil {
		(*fn)(v)
	}
}
