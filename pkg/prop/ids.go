package prop

import "fmt"

// PropertyID identifies a property type.
type PropertyID int32

// Group is the group a property belongs to.
type Group int32

const (
	GroupSystem Group = 0x10000000
	GroupVendor Group = 0x20000000

	groupMask = 0xf0000000
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupSystem:
		return "SYSTEM"
	case GroupVendor:
		return "VENDOR"
	default:
		return "UNKNOWN"
	}
}

// AreaType is the kind of physical zone a property applies to.
type AreaType int32

const (
	AreaGlobal AreaType = 0x01000000
	AreaWindow AreaType = 0x03000000
	AreaMirror AreaType = 0x04000000
	AreaSeat   AreaType = 0x05000000
	AreaDoor   AreaType = 0x06000000
	AreaWheel  AreaType = 0x07000000

	areaTypeMask = 0x0f000000
)

// String returns the area type name.
func (a AreaType) String() string {
	switch a {
	case AreaGlobal:
		return "GLOBAL"
	case AreaWindow:
		return "WINDOW"
	case AreaMirror:
		return "MIRROR"
	case AreaSeat:
		return "SEAT"
	case AreaDoor:
		return "DOOR"
	case AreaWheel:
		return "WHEEL"
	default:
		return "UNKNOWN"
	}
}

// Type is the value type of a property.
type Type int32

const (
	TypeString   Type = 0x00100000
	TypeBoolean  Type = 0x00200000
	TypeInt32    Type = 0x00400000
	TypeInt32Vec Type = 0x00410000
	TypeInt64    Type = 0x00500000
	TypeInt64Vec Type = 0x00510000
	TypeFloat    Type = 0x00600000
	TypeFloatVec Type = 0x00610000
	TypeBytes    Type = 0x00700000
	TypeMixed    Type = 0x00e00000

	typeMask = 0x00ff0000
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "STRING"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInt32:
		return "INT32"
	case TypeInt32Vec:
		return "INT32_VEC"
	case TypeInt64:
		return "INT64"
	case TypeInt64Vec:
		return "INT64_VEC"
	case TypeFloat:
		return "FLOAT"
	case TypeFloatVec:
		return "FLOAT_VEC"
	case TypeBytes:
		return "BYTES"
	case TypeMixed:
		return "MIXED"
	default:
		return "UNKNOWN"
	}
}

// ParseType returns the type for a name as produced by Type.String.
func ParseType(name string) (Type, bool) {
	for _, t := range []Type{
		TypeString, TypeBoolean, TypeInt32, TypeInt32Vec, TypeInt64,
		TypeInt64Vec, TypeFloat, TypeFloatVec, TypeBytes, TypeMixed,
	} {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Group returns the group encoded in the id.
func (id PropertyID) Group() Group { return Group(uint32(id) & groupMask) }

// AreaType returns the area type encoded in the id.
func (id PropertyID) AreaType() AreaType { return AreaType(int32(id) & areaTypeMask) }

// Type returns the value type encoded in the id.
func (id PropertyID) Type() Type { return Type(int32(id) & typeMask) }

// IsGlobal reports whether the property has a single, area-less instance.
func (id PropertyID) IsGlobal() bool { return id.AreaType() == AreaGlobal }

// IsVendor reports whether the property belongs to the vendor group.
func (id PropertyID) IsVendor() bool { return id.Group() == GroupVendor }

// String returns the well-known name of the property, or its hex id.
func (id PropertyID) String() string {
	if name, ok := propertyNames[id]; ok {
		return name
	}
	return fmt.Sprintf("0x%08x", uint32(id))
}

// NewPropertyID composes an id from its fields.
func NewPropertyID(g Group, a AreaType, t Type, number int32) PropertyID {
	return PropertyID(int32(g) | int32(a) | int32(t) | (number & 0xffff))
}

// Well-known system properties.
const (
	InfoMake                PropertyID = 0x11100101
	InfoModelYear           PropertyID = 0x11400103
	InfoFuelCapacity        PropertyID = 0x11600104
	PerfOdometer            PropertyID = 0x11600204
	PerfVehicleSpeed        PropertyID = 0x11600207
	EngineRPM               PropertyID = 0x11600305
	GearSelection           PropertyID = 0x11400400
	ParkingBrakeOn          PropertyID = 0x11200402
	FuelLevel               PropertyID = 0x11600307
	HvacFanSpeed            PropertyID = 0x15400500
	HvacTemperatureSet      PropertyID = 0x15600503
	HvacPowerOn             PropertyID = 0x15200510
	DoorLock                PropertyID = 0x16200b02
	TirePressure            PropertyID = 0x17600309
	WindowPos               PropertyID = 0x13400bc0
	HeadlightsState         PropertyID = 0x11400e00
	VhalHeartbeat           PropertyID = 0x11500f3f
	WheelTick               PropertyID = 0x11510306
	VendorMixedTestProperty PropertyID = 0x21e00111
)

var propertyNames = map[PropertyID]string{
	InfoMake:                "INFO_MAKE",
	InfoModelYear:           "INFO_MODEL_YEAR",
	InfoFuelCapacity:        "INFO_FUEL_CAPACITY",
	PerfOdometer:            "PERF_ODOMETER",
	PerfVehicleSpeed:        "PERF_VEHICLE_SPEED",
	EngineRPM:               "ENGINE_RPM",
	GearSelection:           "GEAR_SELECTION",
	ParkingBrakeOn:          "PARKING_BRAKE_ON",
	FuelLevel:               "FUEL_LEVEL",
	HvacFanSpeed:            "HVAC_FAN_SPEED",
	HvacTemperatureSet:      "HVAC_TEMPERATURE_SET",
	HvacPowerOn:             "HVAC_POWER_ON",
	DoorLock:                "DOOR_LOCK",
	TirePressure:            "TIRE_PRESSURE",
	WindowPos:               "WINDOW_POS",
	HeadlightsState:         "HEADLIGHTS_STATE",
	VhalHeartbeat:           "VHAL_HEARTBEAT",
	WheelTick:               "WHEEL_TICK",
	VendorMixedTestProperty: "VENDOR_MIXED_TEST_PROPERTY",
}

// LookupName returns the well-known property with the given name.
func LookupName(name string) (PropertyID, bool) {
	for id, n := range propertyNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}
