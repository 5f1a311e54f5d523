package engine

import (
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Conn is one open engine connection. It exclusively owns the underlying
// connection state; Close releases it exactly once.
type Conn struct {
	conn   *sqlite.Conn
	path   string
	closed bool
}

// Open opens or creates a store at the given path. ":memory:" opens a
// private in-memory store. The returned connection has the standard
// pragmas applied; an error here is terminal for the attempt and no
// partially-usable connection is returned.
func Open(path string) (*Conn, error) {
	if path == "" {
		return nil, fmt.Errorf("empty store path")
	}

	conn, err := sqlite.OpenConn(path)
	if err != nil {
		return nil, err
	}

	if err := applyPragmas(conn); err != nil {
		conn.Close()
		return nil, err
	}

	Logger().Debug("engine connection opened")
	return &Conn{conn: conn, path: path}, nil
}

// applyPragmas configures every fresh connection. Settings follow the
// engine's own embedded-use defaults: WAL for file stores, a busy timeout
// so concurrent handles on one store wait instead of failing fast.
func applyPragmas(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// Path returns the store path this connection was opened with.
func (c *Conn) Path() string {
	return c.path
}

// Execute runs a statement that produces no result rows (DDL/DML).
// Atomicity is the engine's own; this surface adds none.
func (c *Conn) Execute(sql string) error {
	if c.closed {
		return fmt.Errorf("connection closed")
	}
	return sqlitex.ExecuteTransient(c.conn, sql, nil)
}

// Prepare compiles a SQL string into a statement whose lifecycle is
// independent of any statement cache. The caller owns the result and
// must Finalize it; all statements must be finalized before Close.
func (c *Conn) Prepare(sql string) (*Stmt, error) {
	if c.closed {
		return nil, fmt.Errorf("connection closed")
	}

	stmt, trailing, err := c.conn.PrepareTransient(sql)
	if err != nil {
		return nil, err
	}
	if rest := strings.TrimSpace(sql[len(sql)-trailing:]); trailing > 0 && rest != "" {
		stmt.Finalize()
		return nil, fmt.Errorf("prepare accepts a single statement, found trailing %q", rest)
	}
	return &Stmt{stmt: stmt}, nil
}

// Close flushes and closes the engine connection. Safe to call more than
// once; only the first call releases anything. All prepared statements
// must already be finalized or the engine refuses to close.
func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	Logger().Debug("engine connection closed")
	return c.conn.Close()
}

// Corrupted reports whether err is a corruption-class engine failure:
// the connection's state can no longer be trusted and every subsequent
// call on it should fail clearly instead of running on corrupted state.
func Corrupted(err error) bool {
	switch sqlite.ErrCode(err) {
	case sqlite.ResultCorrupt, sqlite.ResultNotADB, sqlite.ResultInternal:
		return true
	default:
		return false
	}
}
