package propdef

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/validate"
)

// ErrInvalidDefinition is returned for definitions that cannot be registered.
var ErrInvalidDefinition = errors.New("invalid property definition")

// Property is a resolved definition.
type Property struct {
	Name    string
	Config  prop.Config
	Initial []*prop.Value
}

// Definitions is an ordered, validated set of properties.
type Definitions struct {
	Vehicle    string
	Properties []Property

	byID map[prop.PropertyID]int
}

// Build resolves and validates raw definitions.
func Build(raw *RawDefinitions) (*Definitions, error) {
	defs := &Definitions{
		Vehicle: raw.Vehicle,
		byID:    make(map[prop.PropertyID]int, len(raw.Properties)),
	}

	for i := range raw.Properties {
		p, err := buildProperty(&raw.Properties[i])
		if err != nil {
			return nil, err
		}
		if _, dup := defs.byID[p.Config.Prop]; dup {
			return nil, fmt.Errorf("%w: %s defined twice", ErrInvalidDefinition, p.Name)
		}
		defs.byID[p.Config.Prop] = len(defs.Properties)
		defs.Properties = append(defs.Properties, p)
	}
	return defs, nil
}

// Lookup returns the definition of id.
func (d *Definitions) Lookup(id prop.PropertyID) (*Property, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &d.Properties[i], true
}

// LookupName returns the definition with the given display name.
func (d *Definitions) LookupName(name string) (*Property, bool) {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i], true
		}
	}
	return nil, false
}

// Name returns the display name of id, falling back to its well-known name.
func (d *Definitions) Name(id prop.PropertyID) string {
	if p, ok := d.Lookup(id); ok && p.Name != "" {
		return p.Name
	}
	return id.String()
}

// Configs returns copies of all configs in definition order.
func (d *Definitions) Configs() []prop.Config {
	out := make([]prop.Config, 0, len(d.Properties))
	for _, p := range d.Properties {
		out = append(out, p.Config.Clone())
	}
	return out
}

// InitialValues returns copies of all initial values.
func (d *Definitions) InitialValues() []*prop.Value {
	var out []*prop.Value
	for _, p := range d.Properties {
		for _, v := range p.Initial {
			out = append(out, v.Clone())
		}
	}
	return out
}

func buildProperty(rp *RawProperty) (Property, error) {
	id, err := resolveID(rp)
	if err != nil {
		return Property{}, err
	}
	name := rp.Name
	if name == "" {
		name = id.String()
	}
	fail := func(format string, args ...any) (Property, error) {
		return Property{}, fmt.Errorf("%w: %s: %s", ErrInvalidDefinition, name, fmt.Sprintf(format, args...))
	}

	if _, ok := prop.ParseType(id.Type().String()); !ok {
		return fail("unknown type in id 0x%08x", uint32(id))
	}

	cfg := prop.Config{
		Prop:          id,
		Access:        prop.AccessRead,
		ChangeMode:    prop.ChangeModeOnChange,
		MinSampleRate: rp.MinSampleRate,
		MaxSampleRate: rp.MaxSampleRate,
		ConfigArray:   slices.Clone(rp.ConfigArray),
		ConfigString:  rp.ConfigString,
	}
	if rp.Access != "" {
		a, ok := prop.ParseAccess(rp.Access)
		if !ok {
			return fail("unknown access %q", rp.Access)
		}
		cfg.Access = a
	}
	if rp.ChangeMode != "" {
		m, ok := prop.ParseChangeMode(rp.ChangeMode)
		if !ok {
			return fail("unknown change mode %q", rp.ChangeMode)
		}
		cfg.ChangeMode = m
	}
	if cfg.IsContinuous() {
		if cfg.MaxSampleRate <= 0 || cfg.MinSampleRate > cfg.MaxSampleRate {
			return fail("continuous sample rates [%v, %v] are invalid", cfg.MinSampleRate, cfg.MaxSampleRate)
		}
	}

	if id.IsGlobal() && len(rp.Areas) > 1 {
		return fail("global property declares %d areas", len(rp.Areas))
	}
	if !id.IsGlobal() && len(rp.Areas) == 0 {
		return fail("area-scoped property declares no areas")
	}
	for _, ra := range rp.Areas {
		if id.IsGlobal() && ra.ID != 0 {
			return fail("global property area must be 0, got 0x%x", ra.ID)
		}
		if !id.IsGlobal() && ra.ID == 0 {
			return fail("area id 0 is reserved for global properties")
		}
		cfg.AreaConfigs = append(cfg.AreaConfigs, areaConfig(id.Type(), &ra))
	}

	p := Property{Name: name, Config: cfg}

	for i, area := range cfg.Areas() {
		raw := rp.Initial
		if i < len(rp.Areas) && rp.Areas[i].Initial != nil {
			raw = rp.Areas[i].Initial
		}
		if raw == nil {
			continue
		}
		v, err := raw.toValue(id, area)
		if err != nil {
			return fail("initial value for area 0x%x: %v", area, err)
		}
		if err := validate.CheckSchema(v, &cfg); err != nil {
			return fail("initial value for area 0x%x: %v", area, err)
		}
		if err := validate.CheckRange(v, &cfg); err != nil {
			return fail("initial value for area 0x%x: %v", area, err)
		}
		p.Initial = append(p.Initial, v)
	}
	return p, nil
}

func resolveID(rp *RawProperty) (prop.PropertyID, error) {
	ref := rp.ID
	if ref == "" {
		ref = rp.Name
	}
	if ref == "" {
		return 0, fmt.Errorf("%w: property without id or name", ErrInvalidDefinition)
	}
	if id, ok := prop.LookupName(ref); ok {
		return id, nil
	}
	n, err := strconv.ParseUint(ref, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a known property nor a numeric id", ErrInvalidDefinition, ref)
	}
	return prop.PropertyID(int32(uint32(n))), nil
}

func areaConfig(t prop.Type, ra *RawArea) prop.AreaConfig {
	ac := prop.AreaConfig{AreaID: ra.ID}
	switch t {
	case prop.TypeInt32:
		ac.MinInt32, ac.MaxInt32 = int32(ra.Min), int32(ra.Max)
	case prop.TypeInt64:
		ac.MinInt64, ac.MaxInt64 = int64(ra.Min), int64(ra.Max)
	case prop.TypeFloat:
		ac.MinFloat, ac.MaxFloat = float32(ra.Min), float32(ra.Max)
	}
	return ac
}

func (rv *RawValue) toValue(id prop.PropertyID, area int32) (*prop.Value, error) {
	v := &prop.Value{
		Prop:   id,
		AreaID: area,
		Status: prop.StatusAvailable,
		Value: prop.RawValue{
			Int32Values: slices.Clone(rv.Int32),
			Int64Values: slices.Clone(rv.Int64),
			FloatValues: slices.Clone(rv.Float),
			StringValue: rv.String,
		},
	}
	if rv.Bool != nil {
		b := prop.ObtainBool(*rv.Bool)
		v.Value.Int32Values = append(b.Value.Int32Values, v.Value.Int32Values...)
	}
	if rv.Bytes != "" {
		b, err := hex.DecodeString(rv.Bytes)
		if err != nil {
			return nil, fmt.Errorf("bytes: %w", err)
		}
		v.Value.Bytes = b
	}
	if rv.Status != "" {
		s, ok := prop.ParseStatus(rv.Status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", rv.Status)
		}
		v.Status = s
	}
	return v, nil
}
