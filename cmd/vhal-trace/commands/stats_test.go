package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

func TestCollect(t *testing.T) {
	path := createTestTraceFile(t, sessionEvents())

	stats, err := Collect(path, log.Filter{})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", stats.TotalEvents)
	}
	if got := stats.EventsByOperation[log.OpTick]; got != 2 {
		t.Errorf("ticks = %d, want 2", got)
	}
	if got := stats.EventsByCategory[log.CategoryResult]; got != 2 {
		t.Errorf("results = %d, want 2", got)
	}
	if got := stats.EventsByDirection[log.DirectionOut]; got != 3 {
		t.Errorf("outgoing = %d, want 3", got)
	}
	if got := stats.EventsByProp[prop.PerfVehicleSpeed]; got != 3 {
		t.Errorf("speed events = %d, want 3", got)
	}
	if got := stats.FailuresByStatus[prop.StatusInvalidArg]; got != 1 {
		t.Errorf("INVALID_ARG failures = %d, want 1", got)
	}
	if _, ok := stats.FailuresByStatus[prop.StatusOK]; ok {
		t.Error("OK results must not count as failures")
	}
	if len(stats.Brokers) != 1 {
		t.Fatalf("brokers = %d, want 1", len(stats.Brokers))
	}
	for _, b := range stats.Brokers {
		if b.Events != 5 || b.Heartbeats != 1 {
			t.Errorf("broker stats = %+v", b)
		}
		if got := b.LastSeen.Sub(b.FirstSeen); got != 3*time.Second {
			t.Errorf("broker duration = %s, want 3s", got)
		}
	}
	if !stats.TimeRange.Start.Equal(testStart) {
		t.Errorf("TimeRange.Start = %v", stats.TimeRange.Start)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestTraceFile(t, sessionEvents())

	var buf bytes.Buffer
	if err := RunStats(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 5",
		"TICK:",
		"HEARTBEAT:",
		"PERF_VEHICLE_SPEED:",
		"Brokers: 1",
		"[0f8e1a2b] 5 events, 1 heartbeats",
		"Failures:",
		"INVALID_ARG:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunStatsEmpty(t *testing.T) {
	path := createTestTraceFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Total Events: 0") {
		t.Errorf("expected zero events, got:\n%s", output)
	}
	if strings.Contains(output, "Time Range") {
		t.Error("empty trace should have no time range")
	}
}
