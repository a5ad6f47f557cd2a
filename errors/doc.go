// Package errors provides structured error types for the bridge module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: field path, Go type and codec names, and cause chain.
//
// Two families share the type. Recoverable integration failures (guest memory
// bounds, malformed expressions) are returned as ordinary errors. Contract
// violations (capacity exhaustion, null ownership handles) are never returned:
// the codec layer panics with them, and Violation reports which family an
// error belongs to.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindLayoutMismatch).
//		Path("args", "1").
//		Codec("option<u8>").
//		Detail("size 2 != 5").
//		Build()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
