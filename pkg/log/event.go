package log

import (
	"time"

	"github.com/vhal-go/vhal/pkg/prop"
)

// Event represents one trace record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// BrokerID identifies the broker instance (UUID).
	BrokerID string `cbor:"2,keyasint"`

	// Direction indicates flow relative to the broker.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Operation that produced the event.
	Operation Operation `cbor:"5,keyasint"`

	// Prop is the property concerned.
	Prop prop.PropertyID `cbor:"6,keyasint"`

	// AreaID is the area concerned, if any.
	AreaID int32 `cbor:"7,keyasint,omitempty"`

	// Status is the outcome of a caller operation (results only).
	Status *prop.StatusCode `cbor:"8,keyasint,omitempty"`

	// Value is the value read, written or emitted.
	Value *prop.Value `cbor:"9,keyasint,omitempty"`

	// SampleRate is the requested rate in Hz (subscribe only).
	SampleRate float32 `cbor:"10,keyasint,omitempty"`

	// Message carries error details.
	Message string `cbor:"11,keyasint,omitempty"`
}

// Direction indicates the direction of flow relative to the broker.
type Direction uint8

const (
	// DirectionIn indicates something received by the broker.
	DirectionIn Direction = 0
	// DirectionOut indicates something sent by the broker.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryResult indicates a completed caller operation.
	CategoryResult Category = 0
	// CategoryEvent indicates a value delivered to the event sink.
	CategoryEvent Category = 1
	// CategoryError indicates a skipped internal inconsistency.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryResult:
		return "RESULT"
	case CategoryEvent:
		return "EVENT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Operation identifies the broker operation.
type Operation uint8

const (
	OpGet Operation = iota
	OpSet
	OpSubscribe
	OpUnsubscribe
	OpPush
	OpTick
	OpHeartbeat
)

var operationNames = []string{"GET", "SET", "SUBSCRIBE", "UNSUBSCRIBE", "PUSH", "TICK", "HEARTBEAT"}

// String returns the operation name.
func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return "UNKNOWN"
}

// ParseOperation returns the operation for a name as produced by String.
func ParseOperation(name string) (Operation, bool) {
	for i, n := range operationNames {
		if n == name {
			return Operation(i), true
		}
	}
	return 0, false
}

// ParseCategory returns the category for a name as produced by String.
func ParseCategory(name string) (Category, bool) {
	for _, c := range []Category{CategoryResult, CategoryEvent, CategoryError} {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
