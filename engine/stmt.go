package engine

import (
	"fmt"

	"zombiezen.com/go/sqlite"

	"github.com/wippyai/wit-limbo/value"
)

// Stmt is one prepared statement. It exclusively owns its engine-side
// prepared state until Finalize.
type Stmt struct {
	stmt      *sqlite.Stmt
	finalized bool
}

// Step advances the statement. It returns true when a row is available,
// false when evaluation is done.
func (s *Stmt) Step() (bool, error) {
	if s.finalized {
		return false, fmt.Errorf("statement finalized")
	}
	return s.stmt.Step()
}

// Reset rewinds the statement so the next Step starts evaluation over.
func (s *Stmt) Reset() error {
	if s.finalized {
		return fmt.Errorf("statement finalized")
	}
	return s.stmt.Reset()
}

// Row marshals the current row into boundary values. Every engine column
// type maps to exactly one tag; a type this mapping does not know is an
// error, not a dropped or coerced value.
func (s *Stmt) Row() (value.Row, error) {
	n := s.stmt.ColumnCount()
	row := make(value.Row, n)
	for i := 0; i < n; i++ {
		v, err := s.column(i)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func (s *Stmt) column(i int) (value.Value, error) {
	switch t := s.stmt.ColumnType(i); t {
	case sqlite.TypeNull:
		return value.Null(), nil
	case sqlite.TypeInteger:
		return value.Integer(s.stmt.ColumnInt64(i)), nil
	case sqlite.TypeFloat:
		return value.Float(s.stmt.ColumnFloat(i)), nil
	case sqlite.TypeText:
		return value.Text(s.stmt.ColumnText(i)), nil
	case sqlite.TypeBlob:
		buf := make([]byte, s.stmt.ColumnLen(i))
		s.stmt.ColumnBytes(i, buf)
		return value.Blob(buf), nil
	default:
		return value.Value{}, fmt.Errorf("column %d: unmappable engine type %v", i, t)
	}
}

// Finalize releases the engine-side prepared state. Safe to call more
// than once; only the first call releases anything.
func (s *Stmt) Finalize() error {
	if s.finalized {
		return nil
	}
	s.finalized = true
	return s.stmt.Finalize()
}
