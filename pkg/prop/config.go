package prop

import "slices"

// ChangeMode describes how a property's value changes over time.
type ChangeMode int32

const (
	// ChangeModeStatic values never change.
	ChangeModeStatic ChangeMode = 0

	// ChangeModeOnChange values are reported when they change.
	ChangeModeOnChange ChangeMode = 1

	// ChangeModeContinuous values are sampled at a subscriber-chosen rate.
	ChangeModeContinuous ChangeMode = 2
)

// String returns the change mode name.
func (m ChangeMode) String() string {
	switch m {
	case ChangeModeStatic:
		return "STATIC"
	case ChangeModeOnChange:
		return "ON_CHANGE"
	case ChangeModeContinuous:
		return "CONTINUOUS"
	default:
		return "UNKNOWN"
	}
}

// ParseChangeMode returns the change mode for a name as produced by String.
func ParseChangeMode(name string) (ChangeMode, bool) {
	for _, m := range []ChangeMode{ChangeModeStatic, ChangeModeOnChange, ChangeModeContinuous} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Access describes which operations callers may perform.
type Access int32

const (
	AccessNone      Access = 0
	AccessRead      Access = 1
	AccessWrite     Access = 2
	AccessReadWrite Access = 3
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access name.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "NONE"
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	case AccessReadWrite:
		return "READ_WRITE"
	default:
		return "UNKNOWN"
	}
}

// ParseAccess returns the access for a name as produced by String.
func ParseAccess(name string) (Access, bool) {
	for _, a := range []Access{AccessNone, AccessRead, AccessWrite, AccessReadWrite} {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// AreaConfig holds per-area bounds. A (0, 0) bound pair means unbounded.
type AreaConfig struct {
	AreaID   int32
	MinInt32 int32
	MaxInt32 int32
	MinInt64 int64
	MaxInt64 int64
	MinFloat float32
	MaxFloat float32
}

// Config is the static schema of a property.
type Config struct {
	Prop          PropertyID
	Access        Access
	ChangeMode    ChangeMode
	MinSampleRate float32
	MaxSampleRate float32

	// AreaConfigs is empty for global properties without bounds.
	AreaConfigs []AreaConfig

	// ConfigArray is interpreted by property type. For vendor MIXED
	// properties see MixedLayout.
	ConfigArray  []int32
	ConfigString string
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	c.AreaConfigs = slices.Clone(c.AreaConfigs)
	c.ConfigArray = slices.Clone(c.ConfigArray)
	return c
}

// IsContinuous reports whether the property is sampled periodically.
func (c *Config) IsContinuous() bool {
	return c.ChangeMode == ChangeModeContinuous
}

// Areas returns the area ids of every instance the config implies:
// a single area 0 for global properties, one per AreaConfig otherwise.
func (c *Config) Areas() []int32 {
	if c.Prop.IsGlobal() {
		return []int32{0}
	}
	areas := make([]int32, 0, len(c.AreaConfigs))
	for _, ac := range c.AreaConfigs {
		areas = append(areas, ac.AreaID)
	}
	return areas
}

// MixedLayout positions within ConfigArray for vendor MIXED properties.
const (
	MixedHasString = iota
	MixedHasBool
	MixedHasInt32
	MixedInt32ArrayLen
	MixedHasInt64
	MixedInt64ArrayLen
	MixedHasFloat
	MixedFloatArrayLen
	MixedBytesLen

	// MixedLayoutLen is the minimum ConfigArray length of a vendor MIXED config.
	MixedLayoutLen
)
