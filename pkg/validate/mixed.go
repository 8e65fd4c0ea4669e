package validate

import (
	"fmt"

	"github.com/vhal-go/vhal/pkg/prop"
)

// MixedCounts is the payload shape a vendor MIXED config prescribes.
type MixedCounts struct {
	HasString bool
	Int32     int
	Int64     int
	Float     int

	// Bytes of 0 means any length.
	Bytes int
}

// MixedLayout decodes the expected payload counts from a vendor MIXED config.
func MixedLayout(cfg *prop.Config) (MixedCounts, error) {
	ca := cfg.ConfigArray
	if len(ca) < prop.MixedLayoutLen {
		return MixedCounts{}, fmt.Errorf("%w: mixed config array has %d entries, need %d",
			prop.ErrInvalidArg, len(ca), prop.MixedLayoutLen)
	}

	var c MixedCounts
	c.HasString = ca[prop.MixedHasString] == 1
	c.Int32 = flag(ca[prop.MixedHasBool]) + flag(ca[prop.MixedHasInt32]) + int(ca[prop.MixedInt32ArrayLen])
	c.Int64 = flag(ca[prop.MixedHasInt64]) + int(ca[prop.MixedInt64ArrayLen])
	c.Float = flag(ca[prop.MixedHasFloat]) + int(ca[prop.MixedFloatArrayLen])
	c.Bytes = int(ca[prop.MixedBytesLen])
	return c, nil
}

func flag(v int32) int {
	if v == 1 {
		return 1
	}
	return 0
}

// CheckMixedSchema verifies a vendor MIXED value against the layout encoded
// in its config. The string field is never length checked.
func CheckMixedSchema(v *prop.Value, cfg *prop.Config) error {
	want, err := MixedLayout(cfg)
	if err != nil {
		return err
	}

	raw := &v.Value
	if len(raw.Int32Values) != want.Int32 {
		return fmt.Errorf("%w: mixed value has %d int32 values, want %d", prop.ErrInvalidArg, len(raw.Int32Values), want.Int32)
	}
	if len(raw.Int64Values) != want.Int64 {
		return fmt.Errorf("%w: mixed value has %d int64 values, want %d", prop.ErrInvalidArg, len(raw.Int64Values), want.Int64)
	}
	if len(raw.FloatValues) != want.Float {
		return fmt.Errorf("%w: mixed value has %d float values, want %d", prop.ErrInvalidArg, len(raw.FloatValues), want.Float)
	}
	if want.Bytes != 0 && len(raw.Bytes) != want.Bytes {
		return fmt.Errorf("%w: mixed value has %d bytes, want %d", prop.ErrInvalidArg, len(raw.Bytes), want.Bytes)
	}
	return nil
}
