package log

import (
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}

	multi := NewMultiLogger(mock1, nil, mock2)

	multi.Log(Event{
		Timestamp: time.Now(),
		BrokerID:  "broker-123",
		Category:  CategoryEvent,
		Operation: OpPush,
	})

	for i, mock := range []*mockLogger{mock1, mock2} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].BrokerID != "broker-123" {
			t.Errorf("logger %d: BrokerID = %q, want %q", i, mock.events[0].BrokerID, "broker-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Timestamp: time.Now()})
}
