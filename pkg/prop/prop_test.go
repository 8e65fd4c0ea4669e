package prop

import (
	"errors"
	"fmt"
	"testing"
)

func TestPropertyIDFields(t *testing.T) {
	tests := []struct {
		id       PropertyID
		group    Group
		areaType AreaType
		typ      Type
		global   bool
	}{
		{PerfVehicleSpeed, GroupSystem, AreaGlobal, TypeFloat, true},
		{HvacTemperatureSet, GroupSystem, AreaSeat, TypeFloat, false},
		{DoorLock, GroupSystem, AreaDoor, TypeBoolean, false},
		{VhalHeartbeat, GroupSystem, AreaGlobal, TypeInt64, true},
		{WheelTick, GroupSystem, AreaGlobal, TypeInt64Vec, true},
		{VendorMixedTestProperty, GroupVendor, AreaGlobal, TypeMixed, true},
		{InfoMake, GroupSystem, AreaGlobal, TypeString, true},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if got := tt.id.Group(); got != tt.group {
				t.Errorf("Group() = %s, want %s", got, tt.group)
			}
			if got := tt.id.AreaType(); got != tt.areaType {
				t.Errorf("AreaType() = %s, want %s", got, tt.areaType)
			}
			if got := tt.id.Type(); got != tt.typ {
				t.Errorf("Type() = %s, want %s", got, tt.typ)
			}
			if got := tt.id.IsGlobal(); got != tt.global {
				t.Errorf("IsGlobal() = %v, want %v", got, tt.global)
			}
		})
	}
}

func TestNewPropertyID(t *testing.T) {
	id := NewPropertyID(GroupVendor, AreaSeat, TypeInt32, 0x0101)
	if id != PropertyID(0x25400101) {
		t.Errorf("NewPropertyID = 0x%08x, want 0x25400101", uint32(id))
	}
	if !id.IsVendor() {
		t.Error("expected vendor property")
	}
	if id.String() != "0x25400101" {
		t.Errorf("String() = %s, want hex id for unknown property", id.String())
	}
}

func TestLookupName(t *testing.T) {
	id, ok := LookupName("PERF_VEHICLE_SPEED")
	if !ok || id != PerfVehicleSpeed {
		t.Errorf("LookupName = %v, %v", id, ok)
	}
	if _, ok := LookupName("NO_SUCH_PROPERTY"); ok {
		t.Error("expected unknown name to fail")
	}
}

func TestParseNames(t *testing.T) {
	if typ, ok := ParseType("INT32_VEC"); !ok || typ != TypeInt32Vec {
		t.Errorf("ParseType = %v, %v", typ, ok)
	}
	if m, ok := ParseChangeMode("CONTINUOUS"); !ok || m != ChangeModeContinuous {
		t.Errorf("ParseChangeMode = %v, %v", m, ok)
	}
	if a, ok := ParseAccess("READ_WRITE"); !ok || a != AccessReadWrite {
		t.Errorf("ParseAccess = %v, %v", a, ok)
	}
	if _, ok := ParseAccess("EXECUTE"); ok {
		t.Error("expected unknown access to fail")
	}
}

func TestValueCloneIsIndependent(t *testing.T) {
	orig := &Value{
		Prop:   WheelTick,
		Status: StatusAvailable,
		Value: RawValue{
			Int64Values: []int64{1, 2, 3},
			Bytes:       []byte{0xAA},
		},
	}

	c := orig.Clone()
	c.Value.Int64Values[0] = 99
	c.Value.Bytes[0] = 0xBB

	if orig.Value.Int64Values[0] != 1 {
		t.Error("clone shares int64 backing array with original")
	}
	if orig.Value.Bytes[0] != 0xAA {
		t.Error("clone shares bytes backing array with original")
	}
	if !orig.Value.Equal(RawValue{Int64Values: []int64{1, 2, 3}, Bytes: []byte{0xAA}}) {
		t.Error("original payload changed")
	}

	var nilValue *Value
	if nilValue.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestConfigAreas(t *testing.T) {
	global := Config{Prop: PerfVehicleSpeed, AreaConfigs: []AreaConfig{{AreaID: 0, MaxFloat: 100}}}
	if got := global.Areas(); len(got) != 1 || got[0] != 0 {
		t.Errorf("global Areas() = %v, want [0]", got)
	}

	seat := Config{
		Prop:        HvacTemperatureSet,
		AreaConfigs: []AreaConfig{{AreaID: 0x1}, {AreaID: 0x4}},
	}
	got := seat.Areas()
	if len(got) != 2 || got[0] != 0x1 || got[1] != 0x4 {
		t.Errorf("seat Areas() = %v, want [1 4]", got)
	}
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := Config{Prop: VendorMixedTestProperty, ConfigArray: []int32{1, 1, 1, 2}}
	c := cfg.Clone()
	c.ConfigArray[0] = 0
	if cfg.ConfigArray[0] != 1 {
		t.Error("clone shares config array with original")
	}
}

func TestObtainTyped(t *testing.T) {
	if v := ObtainBool(true); len(v.Value.Int32Values) != 1 || v.Value.Int32Values[0] != 1 {
		t.Errorf("ObtainBool(true) = %v", v.Value)
	}
	if v := ObtainInt64(7); v.Value.Int64Values[0] != 7 {
		t.Errorf("ObtainInt64(7) = %v", v.Value)
	}
	if v := ObtainString("abc"); v.Value.StringValue != "abc" {
		t.Errorf("ObtainString = %v", v.Value)
	}

	b := []byte{1, 2}
	v := ObtainBytes(b)
	b[0] = 9
	if v.Value.Bytes[0] != 1 {
		t.Error("ObtainBytes should copy its input")
	}
}

func TestValueStatusNames(t *testing.T) {
	for _, s := range []Status{StatusAvailable, StatusUnavailable, StatusErrored} {
		got, ok := ParseStatus(s.String())
		if !ok || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v; want %v", s.String(), got, ok, s)
		}
	}
	if StatusErrored.String() != "ERROR" {
		t.Errorf("StatusErrored.String() = %q, want ERROR", StatusErrored.String())
	}

	// The value status and the error type are distinct.
	var err error = &StatusError{Code: StatusNotAvailable, Message: "door sensor"}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != StatusNotAvailable {
		t.Errorf("errors.As(%v) did not yield *StatusError", err)
	}
}

func TestStatusErrors(t *testing.T) {
	err := fmt.Errorf("%w: area not covered", ErrInvalidArg)

	if !errors.Is(err, ErrInvalidArg) {
		t.Error("wrapped error should match ErrInvalidArg")
	}
	if errors.Is(err, ErrNotAvailable) {
		t.Error("wrapped error should not match ErrNotAvailable")
	}
	if !errors.Is(NewStatusError(StatusTryAgain, "busy"), ErrTryAgain) {
		t.Error("NewStatusError should match sentinel with same code")
	}

	tests := []struct {
		err  error
		want StatusCode
	}{
		{nil, StatusOK},
		{err, StatusInvalidArg},
		{ErrNotAvailable, StatusNotAvailable},
		{errors.New("boom"), StatusInternalError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestElapsedRealtimeMonotonic(t *testing.T) {
	a := ElapsedRealtimeNanos()
	b := ElapsedRealtimeNanos()
	if b < a {
		t.Errorf("ElapsedRealtimeNanos went backwards: %d then %d", a, b)
	}
}
