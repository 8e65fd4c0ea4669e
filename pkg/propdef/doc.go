// Package propdef loads vehicle property definitions from YAML.
//
// A definition file lists the properties an emulated vehicle exposes: the
// schema the broker registers at startup and the initial value of every
// (property, area) instance. Default returns the built-in vehicle.
package propdef
