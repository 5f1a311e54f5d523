// Package witlimbo implements the component:wit-limbo boundary: a
// capability-sandboxed interface to an embedded, file-format-compatible
// SQLite engine.
//
// The boundary is a trust boundary. Every value crossing it is a member
// of a closed tagged union (no shared memory, no pointers); every
// stateful handle has explicit open/use/close semantics; and every
// capability the sandbox needs but cannot provide itself (entropy,
// diagnostics) is an explicit import the host supplies before
// instantiation.
//
// # Architecture Overview
//
//	witlimbo/        World contract: import binding and instantiation
//	├── value/       Closed tagged union for boundary values
//	├── host/        Capability imports: entropy and diagnostic sink
//	├── limbo/       Exported database and statement resources
//	├── engine/      Narrow call surface over the embedded engine
//	├── resource/    Handle arena with generation counters
//	└── errors/      Structured boundary error taxonomy
//
// # Quick Start
//
// Bind imports, instantiate, call exports:
//
//	inst, err := witlimbo.Instantiate(witlimbo.Imports{
//	    Host: host.NewSecureHost(logger),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close()
//
//	c := inst.Exports()
//	db, _ := c.OpenDatabase(":memory:")
//	c.Exec(db, "CREATE TABLE t(a INTEGER, b TEXT)")
//	c.Exec(db, "INSERT INTO t VALUES (1,'x')")
//	st, _ := c.Prepare(db, "SELECT a,b FROM t")
//	rows, _ := c.All(st)
//
// # Execution Model
//
// Single-threaded, synchronous call/response: every exported operation
// blocks and runs to completion inside the sandbox; import callbacks
// return before the triggering operation continues. There is no
// cancellation primitive at this boundary - bound execution time from
// the host runtime if you need one. A multi-threaded host must
// serialize calls per database handle; the boundary adds no internal
// per-handle locking.
//
// # Resource Model
//
// Hosts hold opaque handle tokens backed by a sandbox-side arena with
// generation counters. Dropping a database closes its engine connection
// exactly once and orphans any statements prepared on it; operations on
// orphaned or stale handles fail with an invalid-handle error rather
// than exhibiting undefined behavior.
package witlimbo
