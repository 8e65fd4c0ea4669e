package propdef

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in vehicle definitions.
func Default() *Definitions {
	defs, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in property definitions: %v", err))
	}
	return defs
}
