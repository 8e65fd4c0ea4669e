package validate

import (
	"fmt"

	"github.com/vhal-go/vhal/pkg/prop"
)

// AreaConfigFor returns the AreaConfig that governs v.
// For global properties it is the first declared area config, or nil when
// none is declared. For area-scoped properties it is the first config sharing
// a bit with v.AreaID; no match is an error.
func AreaConfigFor(v *prop.Value, cfg *prop.Config) (*prop.AreaConfig, error) {
	if v.Prop.IsGlobal() {
		if len(cfg.AreaConfigs) == 0 {
			return nil, nil
		}
		return &cfg.AreaConfigs[0], nil
	}
	for i := range cfg.AreaConfigs {
		if cfg.AreaConfigs[i].AreaID&v.AreaID != 0 {
			return &cfg.AreaConfigs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: area 0x%x not covered by config of %s", prop.ErrInvalidArg, v.AreaID, v.Prop)
}

// CheckRange verifies a scalar numeric value against its area bounds.
// It assumes CheckSchema already passed.
func CheckRange(v *prop.Value, cfg *prop.Config) error {
	area, err := AreaConfigFor(v, cfg)
	if err != nil {
		return err
	}
	if area == nil {
		return nil
	}

	raw := &v.Value
	switch v.Prop.Type() {
	case prop.TypeInt32:
		return inBounds(raw.Int32Values, area.MinInt32, area.MaxInt32)
	case prop.TypeInt64:
		return inBounds(raw.Int64Values, area.MinInt64, area.MaxInt64)
	case prop.TypeFloat:
		return inBounds(raw.FloatValues, area.MinFloat, area.MaxFloat)
	}
	return nil
}

func inBounds[T int32 | int64 | float32](vals []T, lo, hi T) error {
	if lo == 0 && hi == 0 {
		return nil
	}
	if len(vals) == 0 {
		return fmt.Errorf("%w: missing value for range check", prop.ErrInvalidArg)
	}
	if vals[0] < lo || vals[0] > hi {
		return fmt.Errorf("%w: %v outside [%v, %v]", prop.ErrInvalidArg, vals[0], lo, hi)
	}
	return nil
}
