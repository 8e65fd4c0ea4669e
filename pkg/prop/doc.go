// Package prop implements the vehicle property data model.
//
// # Property Identifiers
//
// A PropertyID is an opaque 32-bit integer that also encodes three fields
// extractable by pure functions:
//
//	0xG A TT NNNN
//	  G    group      (SYSTEM, VENDOR)
//	  A    area type  (GLOBAL, WINDOW, MIRROR, SEAT, DOOR, WHEEL)
//	  TT   value type (BOOLEAN, INT32, INT32_VEC, ..., MIXED)
//	  NNNN unique number within the group
//
// # Areas
//
// An area id is a bitmask of physical zones. Global properties have a single
// instance at area 0. Area-scoped properties have one instance per AreaConfig
// declared in their Config.
//
// # Values
//
// A Value carries the property id, area id, availability status, a timestamp
// in nanoseconds of elapsed realtime and a RawValue payload. The payload field
// that is populated must match the type encoded in the property id; MIXED
// properties populate several fields according to their Config.
//
// Values are owned by whoever holds them. Stores and brokers copy values at
// every hand-off (see Value.Clone and Obtain), so a caller can never mutate
// state it has already handed over.
//
// # Status Codes
//
// Operations report outcomes with StatusCode values, carried through Go error
// returns as *StatusError. Use errors.Is against the sentinel errors or
// StatusOf to recover the code.
package prop
