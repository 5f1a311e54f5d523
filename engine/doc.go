// Package engine is the narrow internal call surface over the embedded
// database engine.
//
// The boundary consumes the engine through four operations only:
// open-by-path, execute, prepare, and row fetching. Everything else the
// engine does (SQL parsing, planning, the page format, transactions) is
// its own business and stays behind this package.
//
// The engine is zombiezen.com/go/sqlite, a file-format-compatible SQLite
// build in pure Go. A Conn owns exactly one engine connection and is not
// safe for concurrent use; the boundary above serializes per connection.
//
// Errors out of this package are plain engine errors. Classification into
// the boundary taxonomy happens in the caller, which knows which boundary
// operation was in flight.
package engine
