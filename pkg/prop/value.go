package prop

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Status is the availability of a property instance, as reported by hardware.
type Status int32

const (
	StatusAvailable   Status = 0
	StatusUnavailable Status = 1
	StatusErrored     Status = 2
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusUnavailable:
		return "UNAVAILABLE"
	case StatusErrored:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus returns the status for a name as produced by String.
func ParseStatus(name string) (Status, bool) {
	for _, s := range []Status{StatusAvailable, StatusUnavailable, StatusErrored} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// RawValue is the payload of a property value. Exactly the field matching the
// property type is used, except for MIXED properties.
type RawValue struct {
	Int32Values []int32   `cbor:"1,keyasint,omitempty" json:"int32Values,omitempty"`
	Int64Values []int64   `cbor:"2,keyasint,omitempty" json:"int64Values,omitempty"`
	FloatValues []float32 `cbor:"3,keyasint,omitempty" json:"floatValues,omitempty"`
	Bytes       []byte    `cbor:"4,keyasint,omitempty" json:"bytes,omitempty"`
	StringValue string    `cbor:"5,keyasint,omitempty" json:"stringValue,omitempty"`
}

// Clone returns a deep copy of the payload.
func (r RawValue) Clone() RawValue {
	return RawValue{
		Int32Values: slices.Clone(r.Int32Values),
		Int64Values: slices.Clone(r.Int64Values),
		FloatValues: slices.Clone(r.FloatValues),
		Bytes:       slices.Clone(r.Bytes),
		StringValue: r.StringValue,
	}
}

// Equal reports whether both payloads hold the same data.
func (r RawValue) Equal(o RawValue) bool {
	return slices.Equal(r.Int32Values, o.Int32Values) &&
		slices.Equal(r.Int64Values, o.Int64Values) &&
		slices.Equal(r.FloatValues, o.FloatValues) &&
		bytes.Equal(r.Bytes, o.Bytes) &&
		r.StringValue == o.StringValue
}

// IsEmpty reports whether no payload field is set.
func (r RawValue) IsEmpty() bool {
	return len(r.Int32Values) == 0 && len(r.Int64Values) == 0 &&
		len(r.FloatValues) == 0 && len(r.Bytes) == 0 && r.StringValue == ""
}

// String returns a compact representation of the populated fields.
func (r RawValue) String() string {
	var parts []string
	if len(r.Int32Values) > 0 {
		parts = append(parts, fmt.Sprintf("int32=%v", r.Int32Values))
	}
	if len(r.Int64Values) > 0 {
		parts = append(parts, fmt.Sprintf("int64=%v", r.Int64Values))
	}
	if len(r.FloatValues) > 0 {
		parts = append(parts, fmt.Sprintf("float=%v", r.FloatValues))
	}
	if len(r.Bytes) > 0 {
		parts = append(parts, fmt.Sprintf("bytes=%x", r.Bytes))
	}
	if r.StringValue != "" {
		parts = append(parts, fmt.Sprintf("string=%q", r.StringValue))
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Value is a property value for one (property, area) instance.
type Value struct {
	// Prop identifies the property.
	Prop PropertyID `cbor:"1,keyasint" json:"prop"`

	// AreaID is the area bitmask. Always 0 for global properties.
	AreaID int32 `cbor:"2,keyasint" json:"areaId"`

	// Status is the availability reported by hardware.
	Status Status `cbor:"3,keyasint" json:"status"`

	// Timestamp is elapsed realtime in nanoseconds.
	Timestamp int64 `cbor:"4,keyasint" json:"timestamp"`

	// Value is the payload.
	Value RawValue `cbor:"5,keyasint" json:"value"`
}

// Clone returns a deep copy of the value.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	c.Value = v.Value.Clone()
	return &c
}

// Key returns the store key of this instance.
func (v *Value) Key() Key {
	return Key{Prop: v.Prop, AreaID: v.AreaID}
}

// String returns a human-readable representation.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s area=0x%x status=%s ts=%d %s",
		v.Prop, v.AreaID, v.Status, v.Timestamp, v.Value)
}

// Key identifies one property instance.
type Key struct {
	Prop   PropertyID
	AreaID int32
}

// String returns the key as "PROP/0xAREA".
func (k Key) String() string {
	return fmt.Sprintf("%s/0x%x", k.Prop, k.AreaID)
}
