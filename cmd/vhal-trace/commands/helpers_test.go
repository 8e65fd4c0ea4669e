package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

var testStart = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

func createTestTraceFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.vtrace")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func statusPtr(c prop.StatusCode) *prop.StatusCode { return &c }

// sessionEvents is a short broker session: a failed set, a subscribe, two
// ticks and a heartbeat.
func sessionEvents() []log.Event {
	const broker = "0f8e1a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b"
	return []log.Event{
		{
			Timestamp: testStart,
			BrokerID:  broker,
			Direction: log.DirectionIn,
			Category:  log.CategoryResult,
			Operation: log.OpSet,
			Prop:      prop.HvacTemperatureSet,
			AreaID:    0x4,
			Status:    statusPtr(prop.StatusInvalidArg),
			Value: &prop.Value{
				Prop:   prop.HvacTemperatureSet,
				AreaID: 0x4,
				Value:  prop.RawValue{FloatValues: []float32{40}},
			},
			Message: "value out of range",
		},
		{
			Timestamp:  testStart.Add(time.Second),
			BrokerID:   broker,
			Direction:  log.DirectionIn,
			Category:   log.CategoryResult,
			Operation:  log.OpSubscribe,
			Prop:       prop.PerfVehicleSpeed,
			Status:     statusPtr(prop.StatusOK),
			SampleRate: 5,
		},
		{
			Timestamp: testStart.Add(1200 * time.Millisecond),
			BrokerID:  broker,
			Direction: log.DirectionOut,
			Category:  log.CategoryEvent,
			Operation: log.OpTick,
			Prop:      prop.PerfVehicleSpeed,
			Value:     &prop.Value{Prop: prop.PerfVehicleSpeed, Value: prop.RawValue{FloatValues: []float32{12.5}}},
		},
		{
			Timestamp: testStart.Add(1400 * time.Millisecond),
			BrokerID:  broker,
			Direction: log.DirectionOut,
			Category:  log.CategoryEvent,
			Operation: log.OpTick,
			Prop:      prop.PerfVehicleSpeed,
			Value:     &prop.Value{Prop: prop.PerfVehicleSpeed, Value: prop.RawValue{FloatValues: []float32{13}}},
		},
		{
			Timestamp: testStart.Add(3 * time.Second),
			BrokerID:  broker,
			Direction: log.DirectionOut,
			Category:  log.CategoryEvent,
			Operation: log.OpHeartbeat,
			Prop:      prop.VhalHeartbeat,
			Value:     &prop.Value{Prop: prop.VhalHeartbeat, Value: prop.RawValue{Int64Values: []int64{3000}}},
		},
	}
}
