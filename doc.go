// Package variant provides a dynamically typed value for Go.
//
// A Variant holds exactly one of fifteen kinds: null, bool, char, the eight
// sized integers, double, string, sequence (an ordered list of variants) or
// mapping (string keys to variants). The zero Variant is null. Variants are
// plain values: assignment shares container storage, Clone copies deeply,
// Take moves the value out and leaves null behind.
//
// # Architecture Overview
//
//	variant/             Root package: Variant, accessors, equality, JSON
//	├── errors/          Structured error types (phase, kind, path)
//	├── internal/coerce/ Checked integer and float conversions
//	├── transcoder/      MessagePack, TOML and YAML codecs
//	└── cmd/variant/     Command line converter and tree browser
//
// # Typed Access
//
// Exact accessors return the stored value converted to the requested type:
//
//	v := variant.Uint8(200)
//	n, err := v.AsInt32()  // 200, nil
//	_, err = v.AsInt8()    // overflow
//	_, err = variant.Null().AsInt32() // errors.ErrEmpty
//
// Arithmetic kinds convert into each other when the value fits. Bool never
// converts to or from a number. The Or accessors fall back to a default when
// the kind does not match, but still fail on null and on overflow:
//
//	variant.String("x").Int32Or(7) // 7, nil
//	variant.Null().Int32Or(7)      // 0, errors.ErrEmpty
//
// # Equality
//
// Equals compares kinds and values exactly. Equal compares arithmetic values
// by mathematical value, so Equal(Int32(5), Uint64(5)) is true while
// Int32(5).Equals(Uint64(5)) is false.
//
// # JSON
//
//	v, err := variant.FromJSON(`{"a": 1, "b": [true, null, "x"]}`)
//	s, err := v.ToJSON() // {"a":1,"b":[true,null,"x"]}
//
// Decoded integers take the narrowest of int32, uint32, int64 and uint64.
// Mapping keys are encoded in sorted order. Walk and Builder expose the
// event stream the codecs are built on, so other formats plug in the same way.
//
// # Thread Safety
//
// A Variant is not synchronized. Concurrent reads of a tree nobody modifies
// are safe; any mutation requires external locking.
package variant
