package propdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawDefinitions is the YAML document as written.
type RawDefinitions struct {
	Vehicle    string        `yaml:"vehicle"`
	Properties []RawProperty `yaml:"properties"`
}

// RawProperty is one property entry.
type RawProperty struct {
	// Name is the display name. A well-known name also supplies the id.
	Name string `yaml:"name"`

	// ID is a numeric id (decimal or 0x hex) or a well-known name.
	ID string `yaml:"id"`

	Access        string    `yaml:"access"`
	ChangeMode    string    `yaml:"changeMode"`
	MinSampleRate float32   `yaml:"minSampleRate"`
	MaxSampleRate float32   `yaml:"maxSampleRate"`
	ConfigArray   []int32   `yaml:"configArray"`
	ConfigString  string    `yaml:"configString"`
	Areas         []RawArea `yaml:"areas"`

	// Initial applies to every instance without its own initial value.
	Initial *RawValue `yaml:"initial"`
}

// RawArea declares one area instance and its bounds. Bounds are applied to
// the field matching the property type.
type RawArea struct {
	ID      int32     `yaml:"id"`
	Min     float64   `yaml:"min"`
	Max     float64   `yaml:"max"`
	Initial *RawValue `yaml:"initial"`
}

// RawValue is a payload literal.
type RawValue struct {
	Bool   *bool     `yaml:"bool"`
	Int32  []int32   `yaml:"int32"`
	Int64  []int64   `yaml:"int64"`
	Float  []float32 `yaml:"float"`
	Bytes  string    `yaml:"bytes"` // hex
	String string    `yaml:"string"`
	Status string    `yaml:"status"`
}

// Parse parses definitions from YAML bytes. The document is checked against
// Schema before it is decoded.
func Parse(data []byte) (*Definitions, error) {
	if err := checkDocument(data); err != nil {
		return nil, err
	}

	var raw RawDefinitions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing property definitions: %w", err)
	}
	return Build(&raw)
}

// Load loads and parses definitions from a file.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
