package limbo

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	bounderr "github.com/wippyai/wit-limbo/errors"
	"github.com/wippyai/wit-limbo/host"
	"github.com/wippyai/wit-limbo/value"
)

func newComponent(t *testing.T) (*Component, *host.FixedHost) {
	t.Helper()
	// A constant entropy byte is the degenerate case the boundary must
	// tolerate; using it everywhere keeps that property under test.
	h := host.NewFixedHost(0x5a)
	c, err := New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, h
}

func TestNew_RequiresHost(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) should fail")
	}
}

func TestScenario_CreateInsertSelect(t *testing.T) {
	c, _ := newComponent(t)

	db, err := c.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("OpenDatabase: %v", err)
	}
	if err := c.Exec(db, "CREATE TABLE t(a INTEGER, b TEXT)"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.Exec(db, "INSERT INTO t VALUES (1,'x')"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	st, err := c.Prepare(db, "SELECT a,b FROM t")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	rows, err := c.All(st)
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	want := value.Row{value.Integer(1), value.Text("x")}
	if !rows[0].Equal(want) {
		t.Fatalf("row = %v, want %v", rows[0], want)
	}
}

func TestAll_Idempotent(t *testing.T) {
	c, _ := newComponent(t)

	db, _ := c.OpenDatabase(":memory:")
	mustExec(t, c, db, "CREATE TABLE t(a INTEGER)")
	mustExec(t, c, db, "INSERT INTO t VALUES (1),(2),(3)")

	st, err := c.Prepare(db, "SELECT a FROM t ORDER BY a")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	first, err := c.All(st)
	if err != nil {
		t.Fatalf("first All: %v", err)
	}
	second, err := c.All(st)
	if err != nil {
		t.Fatalf("second All: %v", err)
	}

	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("row counts = %d, %d, want 3, 3", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("row %d differs between invocations", i)
		}
	}
}

func TestCrossHandleVisibility(t *testing.T) {
	c, _ := newComponent(t)
	path := filepath.Join(t.TempDir(), "shared.db")

	writer, err := c.OpenDatabase(path)
	if err != nil {
		t.Fatalf("open writer: %v", err)
	}
	reader, err := c.OpenDatabase(path)
	if err != nil {
		t.Fatalf("open reader: %v", err)
	}

	mustExec(t, c, writer, "CREATE TABLE t(a INTEGER)")
	mustExec(t, c, writer, "INSERT INTO t VALUES (99)")

	// A write through one handle is observable through a fresh
	// prepare+all on the other handle over the same store.
	st, err := c.Prepare(reader, "SELECT a FROM t")
	if err != nil {
		t.Fatalf("Prepare on reader: %v", err)
	}
	rows, err := c.All(st)
	if err != nil {
		t.Fatalf("All on reader: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if i, _ := rows[0][0].Integer(); i != 99 {
		t.Fatalf("value = %v, want 99", rows[0][0])
	}
}

func TestExec_ErrorLeavesDatabaseUsable(t *testing.T) {
	c, h := newComponent(t)
	db, _ := c.OpenDatabase(":memory:")

	err := c.Exec(db, "CREATE TALBE broken (a)")
	if err == nil {
		t.Fatal("syntax error should fail")
	}
	if !errors.Is(err, &bounderr.Error{Phase: bounderr.PhaseExec, Kind: bounderr.KindExecFailed}) {
		t.Fatalf("error taxonomy = %v", err)
	}

	// The failure was relayed to the diagnostic import, best-effort.
	found := false
	for _, m := range h.Messages() {
		if strings.Contains(m, "exec failed") {
			found = true
		}
	}
	if !found {
		t.Error("no diagnostic reached the log import")
	}

	// The handle survives the failure.
	if err := c.Exec(db, "CREATE TABLE fine (a INTEGER)"); err != nil {
		t.Fatalf("Exec after failure: %v", err)
	}
}

func TestPrepare_ErrorLeavesDatabaseUsable(t *testing.T) {
	c, _ := newComponent(t)
	db, _ := c.OpenDatabase(":memory:")

	_, err := c.Prepare(db, "SELEC 1")
	if err == nil {
		t.Fatal("syntax error should fail at prepare")
	}
	if !errors.Is(err, &bounderr.Error{Phase: bounderr.PhasePrepare, Kind: bounderr.KindPrepareFailed}) {
		t.Fatalf("error taxonomy = %v", err)
	}

	st, err := c.Prepare(db, "SELECT 1")
	if err != nil {
		t.Fatalf("Prepare after failure: %v", err)
	}
	if _, err := c.All(st); err != nil {
		t.Fatalf("All after failed prepare: %v", err)
	}
}

func TestAll_MidStreamFailureReturnsNoRows(t *testing.T) {
	c, _ := newComponent(t)
	db, _ := c.OpenDatabase(":memory:")
	mustExec(t, c, db, "CREATE TABLE u (a INTEGER UNIQUE)")
	mustExec(t, c, db, "INSERT INTO u VALUES (1)")

	// Compiles cleanly, fails during evaluation.
	st, err := c.Prepare(db, "INSERT INTO u VALUES (1)")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	rows, err := c.All(st)
	if err == nil {
		t.Fatal("constraint violation should fail during evaluation")
	}
	if !errors.Is(err, &bounderr.Error{Phase: bounderr.PhaseExec, Kind: bounderr.KindExecFailed}) {
		t.Fatalf("error taxonomy = %v", err)
	}
	if rows != nil {
		t.Fatalf("partial result set returned: %v", rows)
	}

	// Database and statement handles both survive the failure.
	sel, err := c.Prepare(db, "SELECT count(*) FROM u")
	if err != nil {
		t.Fatalf("Prepare after failure: %v", err)
	}
	counted, err := c.All(sel)
	if err != nil {
		t.Fatalf("All after failure: %v", err)
	}
	if n, _ := counted[0][0].Integer(); n != 1 {
		t.Fatalf("count = %d, want 1 (failed insert must not commit)", n)
	}
}

func TestOpen_FailureIsTerminal(t *testing.T) {
	c, _ := newComponent(t)

	_, err := c.OpenDatabase(filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	if err == nil {
		t.Fatal("open into a missing directory should fail")
	}
	if !errors.Is(err, &bounderr.Error{Phase: bounderr.PhaseOpen, Kind: bounderr.KindOpenFailed}) {
		t.Fatalf("error taxonomy = %v", err)
	}
	if c.Resources() != 0 {
		t.Fatal("failed open leaked a resource")
	}
}

func TestDegenerateEntropy(t *testing.T) {
	// Every RandomByte call returning the same constant must still allow
	// initialization and normal query execution.
	c, err := New(host.NewFixedHost(0x00))
	if err != nil {
		t.Fatalf("New with zero entropy: %v", err)
	}
	defer c.Close()

	db, err := c.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("OpenDatabase: %v", err)
	}
	mustExec(t, c, db, "CREATE TABLE t(a INTEGER)")
	mustExec(t, c, db, "INSERT INTO t VALUES (hex(randomblob(4)) IS NOT NULL)")

	st, err := c.Prepare(db, "SELECT a FROM t")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	rows, err := c.All(st)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
}

func mustExec(t *testing.T, c *Component, db Database, sql string) {
	t.Helper()
	if err := c.Exec(db, sql); err != nil {
		t.Fatalf("%s: %v", sql, err)
	}
}
