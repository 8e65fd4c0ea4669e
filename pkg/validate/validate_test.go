package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/vhal-go/vhal/pkg/prop"
)

func valueOf(id prop.PropertyID, raw prop.RawValue) *prop.Value {
	return &prop.Value{Prop: id, Status: prop.StatusAvailable, Value: raw}
}

func TestCheckSchemaArity(t *testing.T) {
	int32Vec := prop.NewPropertyID(prop.GroupSystem, prop.AreaGlobal, prop.TypeInt32Vec, 1)
	floatVec := prop.NewPropertyID(prop.GroupSystem, prop.AreaGlobal, prop.TypeFloatVec, 2)
	bytesProp := prop.NewPropertyID(prop.GroupSystem, prop.AreaGlobal, prop.TypeBytes, 3)
	systemMixed := prop.NewPropertyID(prop.GroupSystem, prop.AreaGlobal, prop.TypeMixed, 4)
	unknownType := prop.PropertyID(0x11ab0001)

	tests := []struct {
		name    string
		id      prop.PropertyID
		raw     prop.RawValue
		wantErr bool
	}{
		{"bool ok", prop.ParkingBrakeOn, prop.RawValue{Int32Values: []int32{1}}, false},
		{"bool empty", prop.ParkingBrakeOn, prop.RawValue{}, true},
		{"int32 ok", prop.GearSelection, prop.RawValue{Int32Values: []int32{4}}, false},
		{"int32 two values", prop.GearSelection, prop.RawValue{Int32Values: []int32{4, 5}}, true},
		{"int32 vec one", int32Vec, prop.RawValue{Int32Values: []int32{1}}, false},
		{"int32 vec many", int32Vec, prop.RawValue{Int32Values: []int32{1, 2, 3}}, false},
		{"int32 vec empty", int32Vec, prop.RawValue{}, true},
		{"int64 ok", prop.VhalHeartbeat, prop.RawValue{Int64Values: []int64{1}}, false},
		{"int64 in wrong field", prop.VhalHeartbeat, prop.RawValue{Int32Values: []int32{1}}, true},
		{"int64 vec ok", prop.WheelTick, prop.RawValue{Int64Values: []int64{1, 2}}, false},
		{"int64 vec empty", prop.WheelTick, prop.RawValue{}, true},
		{"float ok", prop.PerfVehicleSpeed, prop.RawValue{FloatValues: []float32{1}}, false},
		{"float two values", prop.PerfVehicleSpeed, prop.RawValue{FloatValues: []float32{1, 2}}, true},
		{"float vec ok", floatVec, prop.RawValue{FloatValues: []float32{1}}, false},
		{"float vec empty", floatVec, prop.RawValue{}, true},
		{"bytes empty", bytesProp, prop.RawValue{}, false},
		{"bytes any", bytesProp, prop.RawValue{Bytes: []byte{1, 2, 3}}, false},
		{"string empty", prop.InfoMake, prop.RawValue{}, false},
		{"string any", prop.InfoMake, prop.RawValue{StringValue: "Toyota"}, false},
		{"system mixed unchecked", systemMixed, prop.RawValue{Int32Values: []int32{1, 2, 3}}, false},
		{"unknown type", unknownType, prop.RawValue{Int32Values: []int32{1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &prop.Config{Prop: tt.id}
			err := CheckSchema(valueOf(tt.id, tt.raw), cfg)
			if tt.wantErr {
				if !errors.Is(err, prop.ErrInvalidArg) {
					t.Errorf("CheckSchema() error = %v, want ErrInvalidArg", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckSchema() error = %v, want nil", err)
			}
		})
	}
}

func mixedConfig(ca ...int32) *prop.Config {
	return &prop.Config{Prop: prop.VendorMixedTestProperty, ConfigArray: ca}
}

func TestMixedLayout(t *testing.T) {
	// string, bool, int, int[2], long, long[0], float, float[3], bytes[4]
	counts, err := MixedLayout(mixedConfig(1, 1, 1, 2, 1, 0, 1, 3, 4))
	if err != nil {
		t.Fatalf("MixedLayout() error = %v", err)
	}
	want := MixedCounts{HasString: true, Int32: 4, Int64: 1, Float: 4, Bytes: 4}
	if counts != want {
		t.Errorf("MixedLayout() = %+v, want %+v", counts, want)
	}

	if _, err := MixedLayout(mixedConfig(1, 1, 1)); !errors.Is(err, prop.ErrInvalidArg) {
		t.Errorf("short config array error = %v, want ErrInvalidArg", err)
	}
}

func TestCheckMixedSchema(t *testing.T) {
	cfg := mixedConfig(1, 1, 1, 2, 1, 0, 1, 3, 4)
	good := prop.RawValue{
		Int32Values: []int32{1, 2, 3, 4},
		Int64Values: []int64{5},
		FloatValues: []float32{1, 2, 3, 4},
		Bytes:       []byte{1, 2, 3, 4},
		StringValue: "any length is fine",
	}

	if err := CheckMixedSchema(valueOf(prop.VendorMixedTestProperty, good), cfg); err != nil {
		t.Fatalf("valid mixed value rejected: %v", err)
	}
	if err := CheckSchema(valueOf(prop.VendorMixedTestProperty, good), cfg); err != nil {
		t.Fatalf("CheckSchema should delegate vendor mixed: %v", err)
	}

	mutations := map[string]func(r *prop.RawValue){
		"int32 short": func(r *prop.RawValue) { r.Int32Values = r.Int32Values[:3] },
		"int32 long":  func(r *prop.RawValue) { r.Int32Values = append(r.Int32Values, 9) },
		"int64 none":  func(r *prop.RawValue) { r.Int64Values = nil },
		"float long":  func(r *prop.RawValue) { r.FloatValues = append(r.FloatValues, 9) },
		"bytes short": func(r *prop.RawValue) { r.Bytes = r.Bytes[:1] },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			raw := good.Clone()
			mutate(&raw)
			if err := CheckMixedSchema(valueOf(prop.VendorMixedTestProperty, raw), cfg); !errors.Is(err, prop.ErrInvalidArg) {
				t.Errorf("CheckMixedSchema() error = %v, want ErrInvalidArg", err)
			}
		})
	}

	t.Run("string never checked", func(t *testing.T) {
		raw := good.Clone()
		raw.StringValue = ""
		if err := CheckMixedSchema(valueOf(prop.VendorMixedTestProperty, raw), cfg); err != nil {
			t.Errorf("empty string rejected: %v", err)
		}
	})
}

func TestCheckMixedSchemaBytesUnchecked(t *testing.T) {
	cfg := mixedConfig(0, 0, 0, 0, 0, 0, 0, 0, 0)
	for _, n := range []int{0, 1, 17} {
		raw := prop.RawValue{Bytes: make([]byte, n)}
		if err := CheckMixedSchema(valueOf(prop.VendorMixedTestProperty, raw), cfg); err != nil {
			t.Errorf("bytes len %d rejected with zero expected length: %v", n, err)
		}
	}
}

// Rejects iff a numeric length differs from its expected count, or bytes
// differ from a nonzero expected length.
func TestCheckMixedSchemaIff(t *testing.T) {
	cfg := mixedConfig(0, 1, 0, 1, 1, 0, 0, 2, 3)
	// expected: int32=2 int64=1 float=2 bytes=3
	for i32 := 0; i32 <= 3; i32++ {
		for i64 := 0; i64 <= 2; i64++ {
			for f := 0; f <= 3; f++ {
				for b := 0; b <= 4; b++ {
					raw := prop.RawValue{
						Int32Values: make([]int32, i32),
						Int64Values: make([]int64, i64),
						FloatValues: make([]float32, f),
						Bytes:       make([]byte, b),
					}
					wantReject := i32 != 2 || i64 != 1 || f != 2 || b != 3
					err := CheckMixedSchema(valueOf(prop.VendorMixedTestProperty, raw), cfg)
					if (err != nil) != wantReject {
						t.Errorf("int32=%d int64=%d float=%d bytes=%d: err=%v, wantReject=%v",
							i32, i64, f, b, err, wantReject)
					}
				}
			}
		}
	}
}

func TestCheckRangeUnboundedZeroPair(t *testing.T) {
	int64Prop := prop.NewPropertyID(prop.GroupSystem, prop.AreaGlobal, prop.TypeInt64, 9)
	cfgs := []struct {
		id  prop.PropertyID
		raw prop.RawValue
	}{
		{prop.GearSelection, prop.RawValue{Int32Values: []int32{math.MaxInt32}}},
		{prop.GearSelection, prop.RawValue{Int32Values: []int32{math.MinInt32}}},
		{int64Prop, prop.RawValue{Int64Values: []int64{math.MaxInt64}}},
		{prop.PerfVehicleSpeed, prop.RawValue{FloatValues: []float32{math.MaxFloat32}}},
		{prop.PerfVehicleSpeed, prop.RawValue{FloatValues: []float32{-math.MaxFloat32}}},
	}
	for _, c := range cfgs {
		cfg := &prop.Config{Prop: c.id, AreaConfigs: []prop.AreaConfig{{AreaID: 0}}}
		if err := CheckRange(valueOf(c.id, c.raw), cfg); err != nil {
			t.Errorf("%s %v: unbounded range rejected: %v", c.id, c.raw, err)
		}
	}
}

func TestCheckRangeBounds(t *testing.T) {
	cfg := &prop.Config{
		Prop: prop.HvacFanSpeed,
		AreaConfigs: []prop.AreaConfig{
			{AreaID: 0x1, MinInt32: 1, MaxInt32: 6},
			{AreaID: 0x4, MinInt32: 0, MaxInt32: 100},
		},
	}

	tests := []struct {
		area    int32
		val     int32
		wantErr bool
	}{
		{0x1, 1, false},
		{0x1, 6, false},
		{0x1, 0, true},
		{0x1, 7, true},
		{0x4, 100, false},
		{0x4, 101, true},
		{0x5, 6, false}, // first matching area wins
		{0x2, 3, true},  // no area config covers 0x2
	}
	for _, tt := range tests {
		v := valueOf(prop.HvacFanSpeed, prop.RawValue{Int32Values: []int32{tt.val}})
		v.AreaID = tt.area
		err := CheckRange(v, cfg)
		if tt.wantErr != (err != nil) {
			t.Errorf("area=0x%x val=%d: err=%v, wantErr=%v", tt.area, tt.val, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, prop.ErrInvalidArg) {
			t.Errorf("area=0x%x val=%d: err=%v, want ErrInvalidArg", tt.area, tt.val, err)
		}
	}
}

func TestCheckRangeGlobal(t *testing.T) {
	noAreas := &prop.Config{Prop: prop.PerfVehicleSpeed}
	v := valueOf(prop.PerfVehicleSpeed, prop.RawValue{FloatValues: []float32{1e9}})
	if err := CheckRange(v, noAreas); err != nil {
		t.Errorf("global without area configs should skip range check: %v", err)
	}

	bounded := &prop.Config{
		Prop:        prop.PerfVehicleSpeed,
		AreaConfigs: []prop.AreaConfig{{MinFloat: 0, MaxFloat: 80}},
	}
	if err := CheckRange(v, bounded); !errors.Is(err, prop.ErrInvalidArg) {
		t.Errorf("CheckRange() error = %v, want ErrInvalidArg", err)
	}
	v.Value.FloatValues[0] = 80
	if err := CheckRange(v, bounded); err != nil {
		t.Errorf("upper bound should be inclusive: %v", err)
	}
}

func TestCheckRangeSkipsVectors(t *testing.T) {
	cfg := &prop.Config{
		Prop:        prop.WheelTick,
		AreaConfigs: []prop.AreaConfig{{MinInt64: 0, MaxInt64: 10}},
	}
	v := valueOf(prop.WheelTick, prop.RawValue{Int64Values: []int64{1000, -5}})
	if err := CheckRange(v, cfg); err != nil {
		t.Errorf("vector values should not be range checked: %v", err)
	}
}
