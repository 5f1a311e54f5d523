package limbo

import (
	"go.uber.org/zap"

	"github.com/wippyai/wit-limbo/engine"
	"github.com/wippyai/wit-limbo/errors"
	"github.com/wippyai/wit-limbo/resource"
)

// database is the sandbox-side state behind a Database handle. It
// exclusively owns its engine connection and tracks the statements
// prepared against it so they can be orphaned if it is dropped first.
type database struct {
	conn       *engine.Conn
	path       string
	statements map[resource.Handle]*statement
	poisoned   bool
}

// Drop releases the engine connection. Called exactly once by the
// resource table when the handle is removed; dependent statements must
// already be finalized by then.
func (d *database) Drop() {
	if err := d.conn.Close(); err != nil {
		engine.Logger().Warn("engine connection close failed", zap.Error(err))
	}
}

// OpenDatabase opens or creates a store at path and returns a handle
// owning the resulting engine connection. Failure is terminal for this
// attempt: no partially-usable handle is ever returned.
func (c *Component) OpenDatabase(path string) (Database, error) {
	if c.closed {
		return 0, errors.Closed("component")
	}

	conn, err := engine.Open(path)
	if err != nil {
		c.host.Log("open failed: " + err.Error())
		return 0, errors.Open(path, err)
	}

	d := &database{
		conn:       conn,
		path:       path,
		statements: make(map[resource.Handle]*statement),
	}
	h := c.resources.Insert(databaseTypeID, d)
	if h == 0 {
		conn.Close()
		return 0, errors.Closed("component")
	}

	c.logger.Debug("database opened",
		zap.String("path", path),
		zap.Uint64("handle", uint64(h)),
	)
	return Database(h), nil
}

// Exec executes a statement with no expected result rows (DDL/DML).
// Failures surface the engine's diagnostic and leave the database usable,
// except corruption-class failures, which poison the handle so every
// subsequent call fails clearly instead of running on corrupted state.
func (c *Component) Exec(db Database, sql string) error {
	d, err := c.lookupDatabase(db)
	if err != nil {
		return err
	}
	if d.poisoned {
		return errors.Poisoned(errors.PhaseExec, uint64(db))
	}

	if execErr := d.conn.Execute(sql); execErr != nil {
		if engine.Corrupted(execErr) {
			d.poisoned = true
		}
		c.host.Log("exec failed: " + execErr.Error())
		return errors.Exec(sql, execErr)
	}
	return nil
}

// Prepare compiles sql into a reusable statement bound to db. A compile
// failure carries the engine's parser diagnostic and leaves the database
// usable.
func (c *Component) Prepare(db Database, sql string) (Statement, error) {
	d, err := c.lookupDatabase(db)
	if err != nil {
		return 0, err
	}
	if d.poisoned {
		return 0, errors.Poisoned(errors.PhasePrepare, uint64(db))
	}

	stmt, prepErr := d.conn.Prepare(sql)
	if prepErr != nil {
		c.host.Log("prepare failed: " + prepErr.Error())
		return 0, errors.Prepare(sql, prepErr)
	}

	s := &statement{
		stmt:  stmt,
		sql:   sql,
		owner: resource.Handle(db),
	}
	h := c.resources.Insert(statementTypeID, s)
	if h == 0 {
		stmt.Finalize()
		return 0, errors.Closed("component")
	}
	d.statements[h] = s

	return Statement(h), nil
}

// DropDatabase destroys a database handle: dependent statements are
// orphaned (their engine-side state finalized first, as the engine
// requires), then the connection is closed exactly once.
func (c *Component) DropDatabase(db Database) error {
	d, err := c.lookupDatabase(db)
	if err != nil {
		return err
	}

	for h, s := range d.statements {
		s.orphan()
		delete(d.statements, h)
	}

	c.resources.Remove(resource.Handle(db))
	c.logger.Debug("database dropped", zap.String("path", d.path))
	return nil
}

func (c *Component) lookupDatabase(db Database) (*database, error) {
	if c.closed {
		return nil, errors.Closed("component")
	}
	v, ok := c.resources.GetTyped(resource.Handle(db), databaseTypeID)
	if !ok {
		return nil, errors.InvalidHandle("database", uint64(db))
	}
	return v.(*database), nil
}
