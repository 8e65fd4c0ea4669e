package interactive

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/propdef"
)

// ParseTarget parses "<property>[@<area>]". The property may be a defined
// name, a well-known name or a numeric id.
func ParseTarget(defs *propdef.Definitions, s string) (prop.PropertyID, int32, error) {
	name, areaStr, hasArea := strings.Cut(s, "@")

	id, err := resolveProperty(defs, name)
	if err != nil {
		return 0, 0, err
	}

	var area int32
	if hasArea {
		n, err := strconv.ParseInt(areaStr, 0, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid area %q", areaStr)
		}
		area = int32(n)
	}
	return id, area, nil
}

func resolveProperty(defs *propdef.Definitions, name string) (prop.PropertyID, error) {
	name = strings.ToUpper(name)
	if defs != nil {
		if p, ok := defs.LookupName(name); ok {
			return p.Config.Prop, nil
		}
	}
	if id, ok := prop.LookupName(name); ok {
		return id, nil
	}
	if n, err := strconv.ParseUint(name, 0, 32); err == nil {
		return prop.PropertyID(int32(uint32(n))), nil
	}
	return 0, fmt.Errorf("unknown property %q", name)
}

// ParseValue builds the payload of a write to id from console arguments.
func ParseValue(id prop.PropertyID, args []string) (*prop.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing value")
	}

	var v *prop.Value
	switch t := id.Type(); t {
	case prop.TypeBoolean:
		b, err := parseBool(args[0])
		if err != nil {
			return nil, err
		}
		v = prop.ObtainBool(b)

	case prop.TypeInt32, prop.TypeInt32Vec:
		vals, err := parseInts(args, 32)
		if err != nil {
			return nil, err
		}
		v = &prop.Value{}
		for _, n := range vals {
			v.Value.Int32Values = append(v.Value.Int32Values, int32(n))
		}

	case prop.TypeInt64, prop.TypeInt64Vec:
		vals, err := parseInts(args, 64)
		if err != nil {
			return nil, err
		}
		v = prop.ObtainInt64(vals...)

	case prop.TypeFloat, prop.TypeFloatVec:
		v = &prop.Value{}
		for _, a := range args {
			f, err := strconv.ParseFloat(a, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid float %q", a)
			}
			v.Value.FloatValues = append(v.Value.FloatValues, float32(f))
		}

	case prop.TypeString:
		v = prop.ObtainString(strings.Trim(strings.Join(args, " "), `"'`))

	case prop.TypeBytes:
		b, err := hex.DecodeString(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q", args[0])
		}
		v = prop.ObtainBytes(b)

	default:
		return nil, fmt.Errorf("%s values cannot be entered on the console", t)
	}

	v.Prop = id
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return b, nil
}

func parseInts(args []string, bits int) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseInt(a, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}
