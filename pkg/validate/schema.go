package validate

import (
	"fmt"

	"github.com/vhal-go/vhal/pkg/prop"
)

// CheckSchema verifies that the payload shape of v matches the type of its
// property.
func CheckSchema(v *prop.Value, cfg *prop.Config) error {
	raw := &v.Value
	switch typ := v.Prop.Type(); typ {
	case prop.TypeBoolean, prop.TypeInt32:
		return exactly(typ, "int32", len(raw.Int32Values), 1)
	case prop.TypeInt32Vec:
		return atLeastOne(typ, "int32", len(raw.Int32Values))
	case prop.TypeInt64:
		return exactly(typ, "int64", len(raw.Int64Values), 1)
	case prop.TypeInt64Vec:
		return atLeastOne(typ, "int64", len(raw.Int64Values))
	case prop.TypeFloat:
		return exactly(typ, "float", len(raw.FloatValues), 1)
	case prop.TypeFloatVec:
		return atLeastOne(typ, "float", len(raw.FloatValues))
	case prop.TypeBytes, prop.TypeString:
		// Empty byte arrays and strings are allowed.
		return nil
	case prop.TypeMixed:
		if v.Prop.IsVendor() {
			return CheckMixedSchema(v, cfg)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown property type 0x%x", prop.ErrInvalidArg, int32(typ))
	}
}

func exactly(typ prop.Type, field string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s expects %d %s value(s), got %d", prop.ErrInvalidArg, typ, want, field, got)
	}
	return nil
}

func atLeastOne(typ prop.Type, field string, got int) error {
	if got < 1 {
		return fmt.Errorf("%w: %s expects at least one %s value", prop.ErrInvalidArg, typ, field)
	}
	return nil
}
