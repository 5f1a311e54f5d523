package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which boundary operation the error occurred in.
type Phase string

const (
	PhaseOpen    Phase = "open"    // database construction
	PhasePrepare Phase = "prepare" // SQL compilation
	PhaseExec    Phase = "exec"    // statement execution
	PhaseFetch   Phase = "fetch"   // row materialization
	PhaseMarshal Phase = "marshal" // engine value to boundary value
	PhaseHost    Phase = "host"    // capability import plumbing
	PhaseWorld   Phase = "world"   // world contract negotiation
)

// Kind categorizes the error.
type Kind string

const (
	KindOpenFailed      Kind = "open_failed"
	KindPrepareFailed   Kind = "prepare_failed"
	KindExecFailed      Kind = "exec_failed"
	KindInvalidHandle   Kind = "invalid_handle"
	KindClosed          Kind = "closed"
	KindPoisoned        Kind = "poisoned"
	KindUnsupportedType Kind = "unsupported_type"
	KindMissingImport   Kind = "missing_import"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the boundary.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	SQL    string
	Detail string
	Handle uint64
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Handle != 0 {
		fmt.Fprintf(&b, " handle=%#x", e.Handle)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.SQL != "" {
		fmt.Fprintf(&b, " (sql: %s)", truncateSQL(e.SQL))
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two boundary errors match
// when Phase and Kind agree.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

func truncateSQL(sql string) string {
	const max = 120
	sql = strings.TrimSpace(sql)
	if len(sql) <= max {
		return sql
	}
	return sql[:max] + "..."
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// SQL records the statement text the error relates to.
func (b *Builder) SQL(sql string) *Builder {
	b.err.SQL = sql
	return b
}

// Handle records the resource handle the error relates to.
func (b *Builder) Handle(h uint64) *Builder {
	b.err.Handle = h
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the boundary taxonomy.

// Open creates an open error: the store cannot be opened or created at the
// given path. Terminal for that construction attempt.
func Open(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindOpenFailed,
		Detail: fmt.Sprintf("cannot open store at %q", path),
		Cause:  cause,
	}
}

// Prepare creates a prepare error: SQL failed to compile. The database
// remains usable.
func Prepare(sql string, cause error) *Error {
	return &Error{
		Phase: PhasePrepare,
		Kind:  KindPrepareFailed,
		SQL:   sql,
		Cause: cause,
	}
}

// Exec creates an exec error: SQL failed during execution.
func Exec(sql string, cause error) *Error {
	return &Error{
		Phase: PhaseExec,
		Kind:  KindExecFailed,
		SQL:   sql,
		Cause: cause,
	}
}

// InvalidHandle creates an invalid handle error: the operation was invoked
// on a handle that is stale, already dropped, or of the wrong resource type.
func InvalidHandle(what string, handle uint64) *Error {
	return &Error{
		Phase:  PhaseFetch,
		Kind:   KindInvalidHandle,
		Handle: handle,
		Detail: fmt.Sprintf("invalid %s handle", what),
	}
}

// Orphaned creates an invalid handle error for a statement whose owning
// database was destroyed first.
func Orphaned(handle uint64) *Error {
	return &Error{
		Phase:  PhaseFetch,
		Kind:   KindInvalidHandle,
		Handle: handle,
		Detail: "statement orphaned: owning database was destroyed",
	}
}

// Poisoned creates an error for operations on a database whose connection
// state was reported corrupt by the engine. Every call after the corrupting
// failure must fail clearly rather than run on corrupted state.
func Poisoned(phase Phase, handle uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindPoisoned,
		Handle: handle,
		Detail: "connection state corrupted by an earlier failure",
	}
}

// Closed creates an error for operations on a closed component or engine
// connection.
func Closed(what string) *Error {
	return &Error{
		Phase:  PhaseWorld,
		Kind:   KindClosed,
		Detail: what + " is closed",
	}
}

// UnsupportedType creates a marshalling error for an engine column type
// with no boundary tag. Unsupported native types fail at marshalling time,
// never silently drop.
func UnsupportedType(column int, engineType string) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindUnsupportedType,
		Detail: fmt.Sprintf("column %d has engine type %s with no boundary tag", column, engineType),
	}
}

// InvalidInput creates an invalid input error.
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// MissingImport names one unbound capability import.
type MissingImport struct {
	Namespace string // e.g. "component:wit-limbo/host"
	Function  string // e.g. "random-byte"
}

// MissingImportsError is returned when world instantiation fails because
// the host did not supply every declared import.
type MissingImportsError struct {
	Imports []MissingImport
}

func (e *MissingImportsError) Error() string {
	if len(e.Imports) == 0 {
		return "[world] missing_import: no imports specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "missing %d host import(s):", len(e.Imports))
	for _, imp := range e.Imports {
		b.WriteString("\n  ")
		b.WriteString(imp.Namespace)
		b.WriteByte('#')
		b.WriteString(imp.Function)
	}
	return b.String()
}

// Is reports whether target matches this error type.
func (e *MissingImportsError) Is(target error) bool {
	_, ok := target.(*MissingImportsError)
	return ok
}
