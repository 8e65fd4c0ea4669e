package hal

import (
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

func (b *Broker) traceResult(op log.Operation, id prop.PropertyID, area int32, v *prop.Value, rateHz float32, err error) {
	status := prop.StatusOf(err)
	event := log.Event{
		Timestamp:  time.Now(),
		BrokerID:   b.ID,
		Direction:  log.DirectionIn,
		Category:   log.CategoryResult,
		Operation:  op,
		Prop:       id,
		AreaID:     area,
		Status:     &status,
		Value:      v,
		SampleRate: rateHz,
	}
	if err != nil {
		event.Message = err.Error()
	}
	b.trace.Log(event)
}
