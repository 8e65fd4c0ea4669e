package interactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/propdef"
)

func TestParseTarget(t *testing.T) {
	defs := propdef.Default()

	tests := []struct {
		in   string
		id   prop.PropertyID
		area int32
	}{
		{"PERF_VEHICLE_SPEED", prop.PerfVehicleSpeed, 0},
		{"hvac_temperature_set@0x4", prop.HvacTemperatureSet, 0x4},
		{"DOOR_LOCK@16", prop.DoorLock, 0x10},
		{"0x11600305", prop.EngineRPM, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, area, err := ParseTarget(defs, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.area, area)
		})
	}

	_, _, err := ParseTarget(defs, "NOPE")
	assert.Error(t, err)
	_, _, err = ParseTarget(defs, "DOOR_LOCK@left")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(prop.DoorLock, []string{"on"})
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, v.Value.Int32Values)
	assert.Equal(t, prop.DoorLock, v.Prop)

	v, err = ParseValue(prop.HvacFanSpeed, []string{"0x3"})
	require.NoError(t, err)
	assert.Equal(t, []int32{3}, v.Value.Int32Values)

	v, err = ParseValue(prop.WheelTick, []string{"1", "2", "3", "4", "5"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, v.Value.Int64Values)

	v, err = ParseValue(prop.HvacTemperatureSet, []string{"22.5"})
	require.NoError(t, err)
	assert.Equal(t, []float32{22.5}, v.Value.FloatValues)

	v, err = ParseValue(prop.InfoMake, []string{`"Toy`, `Car"`})
	require.NoError(t, err)
	assert.Equal(t, "Toy Car", v.Value.StringValue)

	v, err = ParseValue(prop.PropertyID(0x21700001), []string{"cafe"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, v.Value.Bytes)
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name string
		id   prop.PropertyID
		args []string
	}{
		{"missing", prop.DoorLock, nil},
		{"bad bool", prop.DoorLock, []string{"maybe"}},
		{"bad int", prop.HvacFanSpeed, []string{"three"}},
		{"int32 overflow", prop.HvacFanSpeed, []string{"0x1ffffffff"}},
		{"bad float", prop.HvacTemperatureSet, []string{"warm"}},
		{"bad bytes", prop.PropertyID(0x21700001), []string{"xyz"}},
		{"mixed", prop.VendorMixedTestProperty, []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue(tt.id, tt.args)
			assert.Error(t, err)
		})
	}
}
