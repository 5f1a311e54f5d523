// Package errors provides the structured error types surfaced across the
// database boundary.
//
// Errors are categorized by Phase (which operation was in flight) and Kind
// (what went wrong). The boundary-level taxonomy maps onto pairs:
//
//	open error            PhaseOpen    / KindOpenFailed
//	prepare error         PhasePrepare / KindPrepareFailed
//	exec error            PhaseExec    / KindExecFailed
//	invalid handle error  any phase    / KindInvalidHandle
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExec, errors.KindExecFailed).
//		SQL("INSERT INTO t VALUES (1)").
//		Detail("UNIQUE constraint failed: t.a").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Open(path, cause)
//	err := errors.InvalidHandle("statement", handle)
//
// All errors implement the standard error interface; errors.Is matches when
// Phase and Kind agree, so callers can branch on taxonomy without string
// inspection. Engine diagnostics travel in Detail and Cause; they are for
// humans, not for dispatch.
package errors
