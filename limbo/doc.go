// Package limbo implements the exported resource surface of the sandboxed
// database: the database and statement resources and their operations.
//
// The host side of the boundary holds opaque handle tokens, never direct
// references. Every operation is a synchronous call on the Component that
// runs to completion before returning; capability imports invoked along
// the way (entropy, diagnostics) return before the operation continues.
//
// # Resource lifecycle
//
//	db, _ := c.OpenDatabase("app.db")
//	_ = c.Exec(db, "CREATE TABLE t (a INTEGER, b TEXT)")
//	st, _ := c.Prepare(db, "SELECT a, b FROM t")
//	rows, _ := c.All(st)
//	_ = c.DropStatement(st)
//	_ = c.DropDatabase(db)
//
// A database exclusively owns its engine connection; dropping it closes
// the connection exactly once. A statement holds a non-owning reference
// back to its database: if the database is dropped first the statement
// becomes orphaned, its engine-side state is released with the
// connection, and any further use fails with an invalid-handle error
// rather than undefined behavior.
//
// # Concurrency
//
// The component adds no per-handle locking. A multi-threaded host must
// serialize calls per database handle and must not invoke one statement
// handle from two call sites at once.
package limbo
