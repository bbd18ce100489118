// Package errors provides structured error types for the variant library.
//
// Errors are categorized by Phase (which operation failed) and Kind (error
// category). The Error type carries the requested type name, the active kind,
// the offending value, a path into the variant tree and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCoerce, errors.KindOverflow).
//		Target("int8").
//		Value(300).
//		Detail("value 300 overflows int8").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadType(errors.PhaseAccess, "string", "int32")
//	err := errors.Overflow(errors.PhaseCoerce, -1, "uint8")
//
// The package-level sentinels (ErrEmpty, ErrBadType, ErrOverflow, ErrParse,
// ...) match by kind alone, so callers can write errors.Is(err, errors.ErrOverflow)
// without caring which phase produced it.
package errors
