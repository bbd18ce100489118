// Package coerce implements checked conversions between Go arithmetic types.
//
// Every function reports success with a bool instead of an error so the
// caller can attach its own type names to the failure. The rules are:
//
//   - same signedness, wider or equal destination: always succeeds
//   - unsigned source, strictly wider signed destination: always succeeds
//   - signed source, unsigned destination: source must be non-negative
//   - everything else: range checked with safecast
//   - float source: must be integral and within int64, then as above
//
// Bool and float destinations are handled by the caller; they need no range
// logic.
//
// This package is internal to the variant module.
package coerce
