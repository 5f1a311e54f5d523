package limbo

import (
	"go.uber.org/zap"

	"github.com/wippyai/wit-limbo/engine"
	"github.com/wippyai/wit-limbo/errors"
	"github.com/wippyai/wit-limbo/resource"
	"github.com/wippyai/wit-limbo/value"
)

// statement is the sandbox-side state behind a Statement handle. It owns
// its engine-side prepared state and holds a non-owning back-reference to
// the database it was prepared on.
type statement struct {
	stmt     *engine.Stmt
	sql      string
	owner    resource.Handle
	orphaned bool
}

// orphan finalizes the engine-side state ahead of the owning connection's
// close and marks the handle dead for all further use.
func (s *statement) orphan() {
	s.orphaned = true
	s.stmt.Finalize()
}

// Drop releases the engine-side prepared state. Called exactly once by
// the resource table; finalizing an already-orphaned statement is a no-op.
func (s *statement) Drop() {
	s.stmt.Finalize()
}

// All executes the prepared statement and materializes every resulting
// row before returning. All-or-nothing: a failure mid-stream returns no
// partial result set. Re-invoking a read-only statement with no
// intervening writes returns an identical result set.
func (c *Component) All(st Statement) ([]value.Row, error) {
	s, err := c.lookupStatement(st)
	if err != nil {
		return nil, err
	}

	if d, ok := c.resources.Get(s.owner); ok && d.(*database).poisoned {
		return nil, errors.Poisoned(errors.PhaseExec, uint64(s.owner))
	}

	// Rewind so every invocation evaluates from the start.
	if resetErr := s.stmt.Reset(); resetErr != nil {
		return nil, errors.Exec(s.sql, resetErr)
	}

	var rows []value.Row
	for {
		hasRow, stepErr := s.stmt.Step()
		if stepErr != nil {
			c.failStep(s, stepErr)
			return nil, errors.Exec(s.sql, stepErr)
		}
		if !hasRow {
			break
		}

		row, rowErr := s.stmt.Row()
		if rowErr != nil {
			return nil, errors.New(errors.PhaseMarshal, errors.KindUnsupportedType).
				SQL(s.sql).
				Cause(rowErr).
				Build()
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// DropStatement destroys a statement handle independently of its owning
// database.
func (c *Component) DropStatement(st Statement) error {
	if c.closed {
		return errors.Closed("component")
	}

	v, ok := c.resources.GetTyped(resource.Handle(st), statementTypeID)
	if !ok {
		return errors.InvalidHandle("statement", uint64(st))
	}
	s := v.(*statement)

	if d, ok := c.resources.Get(s.owner); ok {
		delete(d.(*database).statements, resource.Handle(st))
	}
	c.resources.Remove(resource.Handle(st))
	return nil
}

func (c *Component) lookupStatement(st Statement) (*statement, error) {
	if c.closed {
		return nil, errors.Closed("component")
	}
	v, ok := c.resources.GetTyped(resource.Handle(st), statementTypeID)
	if !ok {
		return nil, errors.InvalidHandle("statement", uint64(st))
	}
	s := v.(*statement)
	if s.orphaned {
		return nil, errors.Orphaned(uint64(st))
	}
	return s, nil
}

// failStep records a mid-stream evaluation failure: the statement is
// rewound so the handle stays reusable, the owning database is poisoned
// if the engine reported corruption, and a best-effort diagnostic goes to
// the host. The error itself is surfaced to the caller, never swallowed.
func (c *Component) failStep(s *statement, stepErr error) {
	if engine.Corrupted(stepErr) {
		if d, ok := c.resources.Get(s.owner); ok {
			d.(*database).poisoned = true
		}
	}
	if resetErr := s.stmt.Reset(); resetErr != nil {
		c.logger.Debug("reset after failed step", zap.Error(resetErr))
	}
	c.host.Log("statement evaluation failed: " + stepErr.Error())
}
