package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	witlimbo "github.com/wippyai/wit-limbo"
	"github.com/wippyai/wit-limbo/host"
	"github.com/wippyai/wit-limbo/value"
)

func main() {
	var (
		dbPath      = flag.String("db", ":memory:", "Database path (file or :memory:)")
		execSQL     = flag.String("exec", "", "SQL to execute without returning rows")
		querySQL    = flag.String("query", "", "SQL to prepare and fetch all rows from")
		showWIT     = flag.Bool("wit", false, "Print the world contract and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *showWIT {
		fmt.Print(witlimbo.WIT())
		return
	}

	if *interactive {
		if err := runInteractive(*dbPath, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *execSQL == "" && *querySQL == "" {
		fmt.Fprintln(os.Stderr, "Usage: limbo -db <path> -exec <sql>")
		fmt.Fprintln(os.Stderr, "       limbo -db <path> -query <sql>")
		fmt.Fprintln(os.Stderr, "       limbo -db <path> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       limbo -wit  (print world contract)")
		os.Exit(1)
	}

	if err := run(*dbPath, *execSQL, *querySQL, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, execSQL, querySQL string, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}

	instance, err := witlimbo.Instantiate(witlimbo.Imports{
		Host: host.NewSecureHost(logger),
	})
	if err != nil {
		return fmt.Errorf("instantiate: %w", err)
	}
	defer instance.Close()

	exports := instance.Exports()

	db, err := exports.OpenDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer exports.DropDatabase(db)

	if execSQL != "" {
		if err := exports.Exec(db, execSQL); err != nil {
			return fmt.Errorf("exec: %w", err)
		}
		fmt.Println("ok")
	}

	if querySQL != "" {
		stmt, err := exports.Prepare(db, querySQL)
		if err != nil {
			return fmt.Errorf("prepare: %w", err)
		}
		defer exports.DropStatement(stmt)

		rows, err := exports.All(stmt)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		for _, row := range rows {
			fmt.Println(formatRow(row))
		}
		fmt.Printf("(%d rows)\n", len(rows))
	}

	return nil
}

func formatRow(row value.Row) string {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = formatValue(v)
	}
	return strings.Join(cells, " | ")
}

func formatValue(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "NULL"
	case value.KindInteger:
		n, _ := v.Integer()
		return fmt.Sprintf("%d", n)
	case value.KindFloat:
		f, _ := v.Float()
		return fmt.Sprintf("%g", f)
	case value.KindText:
		s, _ := v.Text()
		return s
	case value.KindBlob:
		b, _ := v.Blob()
		return fmt.Sprintf("x'%x'", b)
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}
