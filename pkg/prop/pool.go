package prop

import "time"

// Obtain returns an owned copy of v.
func Obtain(v *Value) *Value {
	return v.Clone()
}

// ObtainBool returns a value holding a single boolean.
func ObtainBool(b bool) *Value {
	var i int32
	if b {
		i = 1
	}
	return &Value{Value: RawValue{Int32Values: []int32{i}}}
}

// ObtainInt32 returns a value holding the given int32s.
func ObtainInt32(vals ...int32) *Value {
	return &Value{Value: RawValue{Int32Values: append([]int32(nil), vals...)}}
}

// ObtainInt64 returns a value holding the given int64s.
func ObtainInt64(vals ...int64) *Value {
	return &Value{Value: RawValue{Int64Values: append([]int64(nil), vals...)}}
}

// ObtainFloat returns a value holding the given floats.
func ObtainFloat(vals ...float32) *Value {
	return &Value{Value: RawValue{FloatValues: append([]float32(nil), vals...)}}
}

// ObtainBytes returns a value holding a copy of b.
func ObtainBytes(b []byte) *Value {
	return &Value{Value: RawValue{Bytes: append([]byte(nil), b...)}}
}

// ObtainString returns a value holding s.
func ObtainString(s string) *Value {
	return &Value{Value: RawValue{StringValue: s}}
}

var bootTime = time.Now()

// ElapsedRealtimeNanos returns monotonic nanoseconds since process start.
func ElapsedRealtimeNanos() int64 {
	return int64(time.Since(bootTime))
}

// UptimeMillis returns monotonic milliseconds since process start.
func UptimeMillis() int64 {
	return time.Since(bootTime).Milliseconds()
}
