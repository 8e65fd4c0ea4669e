// Package validate checks candidate property values against their Config.
//
// Validation runs in two phases so callers can tell malformed requests from
// out-of-range ones:
//
//   - CheckSchema verifies payload arity against the type encoded in the
//     property id. Vendor MIXED properties are interpreted by
//     CheckMixedSchema from their ConfigArray layout.
//   - CheckRange verifies scalar INT32, INT64 and FLOAT values against the
//     bounds of the matching AreaConfig. A (0, 0) bound pair is unbounded.
//     Vector and MIXED values are not range checked.
//
// All functions are pure and safe for concurrent use. Failures wrap
// prop.ErrInvalidArg.
package validate
