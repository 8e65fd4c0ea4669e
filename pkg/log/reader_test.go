package log

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/vhal-go/vhal/pkg/prop"
)

func createTestTraceFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.vtrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test trace: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, event)
	}
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, BrokerID: "b-1", Direction: DirectionIn, Category: CategoryResult, Operation: OpGet, Prop: prop.PerfVehicleSpeed},
		{Timestamp: base.Add(time.Second), BrokerID: "b-1", Direction: DirectionOut, Category: CategoryEvent, Operation: OpTick, Prop: prop.PerfVehicleSpeed},
		{Timestamp: base.Add(2 * time.Second), BrokerID: "b-2", Direction: DirectionOut, Category: CategoryEvent, Operation: OpHeartbeat, Prop: prop.VhalHeartbeat},
		{Timestamp: base.Add(3 * time.Second), BrokerID: "b-1", Direction: DirectionIn, Category: CategoryError, Operation: OpTick, Prop: prop.DoorLock},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents(time.Now()))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[2].Prop != prop.VhalHeartbeat {
		t.Errorf("events[2].Prop = %v, want VHAL_HEARTBEAT", events[2].Prop)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Now()
	path := createTestTraceFile(t, sampleEvents(base))

	out := DirectionOut
	tick := OpTick
	errCat := CategoryError
	speed := prop.PerfVehicleSpeed
	start := base.Add(500 * time.Millisecond)
	end := base.Add(2500 * time.Millisecond)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"broker", Filter{BrokerID: "b-1"}, 3},
		{"direction", Filter{Direction: &out}, 2},
		{"operation", Filter{Operation: &tick}, 2},
		{"category", Filter{Category: &errCat}, 1},
		{"prop", Filter{Prop: &speed}, 2},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{BrokerID: "b-1", Operation: &tick, Direction: &out}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()
			if got := len(readAll(t, r)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestStreamReader(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, e := range sampleEvents(time.Now()) {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	r := NewStreamReader(&buf, Filter{})
	if got := len(readAll(t, r)); got != 4 {
		t.Errorf("got %d events, want 4", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.vtrace")); err == nil {
		t.Error("expected error for missing file")
	}
}
