package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	witlimbo "github.com/wippyai/wit-limbo"
	"github.com/wippyai/wit-limbo/host"
	"github.com/wippyai/wit-limbo/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sqlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLimit = 20

type shellModel struct {
	err      error
	instance *witlimbo.Instance
	db       witlimbo.Database
	dbPath   string
	verbose  bool
	input    textinput.Model
	history  []historyEntry
}

type historyEntry struct {
	sql  string
	rows []value.Row
	err  error
	exec bool
}

func newShellModel(dbPath string, verbose bool) *shellModel {
	ti := textinput.New()
	ti.Placeholder = "SELECT 1;"
	ti.Prompt = "sql> "
	ti.Width = 72
	ti.Focus()

	return &shellModel{
		dbPath:  dbPath,
		verbose: verbose,
		input:   ti,
	}
}

type openedMsg struct {
	err      error
	instance *witlimbo.Instance
	db       witlimbo.Database
}

type sqlResultMsg struct {
	entry historyEntry
}

func (m *shellModel) Init() tea.Cmd {
	return m.openDatabase
}

func (m *shellModel) openDatabase() tea.Msg {
	logger := zap.NewNop()
	if m.verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	instance, err := witlimbo.Instantiate(witlimbo.Imports{
		Host: host.NewSecureHost(logger),
	})
	if err != nil {
		return openedMsg{err: err}
	}

	db, err := instance.Exports().OpenDatabase(m.dbPath)
	if err != nil {
		instance.Close()
		return openedMsg{err: err}
	}

	return openedMsg{instance: instance, db: db}
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.instance != nil {
				m.instance.Close()
			}
			return m, tea.Quit

		case "enter":
			sql := strings.TrimSpace(m.input.Value())
			if sql == "" || m.instance == nil {
				return m, nil
			}
			m.input.Reset()
			return m, m.runSQL(sql)
		}

	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.instance = msg.instance
		m.db = msg.db

	case sqlResultMsg:
		m.history = append(m.history, msg.entry)
		if len(m.history) > historyLimit {
			m.history = m.history[len(m.history)-historyLimit:]
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *shellModel) runSQL(sql string) tea.Cmd {
	return func() tea.Msg {
		exports := m.instance.Exports()

		if returnsRows(sql) {
			stmt, err := exports.Prepare(m.db, sql)
			if err != nil {
				return sqlResultMsg{entry: historyEntry{sql: sql, err: err}}
			}
			rows, err := exports.All(stmt)
			exports.DropStatement(stmt)
			return sqlResultMsg{entry: historyEntry{sql: sql, rows: rows, err: err}}
		}

		err := exports.Exec(m.db, sql)
		return sqlResultMsg{entry: historyEntry{sql: sql, err: err, exec: true}}
	}
}

// returnsRows guesses whether a statement produces a result set. Wrong
// guesses are harmless: a rowless prepare yields zero rows, and exec on
// a SELECT simply discards them.
func returnsRows(sql string) bool {
	head := strings.ToUpper(sql)
	for _, kw := range []string{"SELECT", "WITH", "PRAGMA", "EXPLAIN", "VALUES"} {
		if strings.HasPrefix(head, kw) {
			return true
		}
	}
	return false
}

func (m *shellModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}

	if m.instance == nil {
		return "Opening database..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("limbo"))
	b.WriteString(" ")
	b.WriteString(m.dbPath)
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(sqlStyle.Render("sql> " + e.sql))
		b.WriteString("\n")
		switch {
		case e.err != nil:
			b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", e.err)))
			b.WriteString("\n")
		case e.exec:
			b.WriteString(resultStyle.Render("ok"))
			b.WriteString("\n")
		default:
			for _, row := range e.rows {
				b.WriteString(rowStyle.Render(formatRow(row)))
				b.WriteString("\n")
			}
			b.WriteString(resultStyle.Render(fmt.Sprintf("(%d rows)", len(e.rows))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • esc quit"))

	return b.String()
}

func runInteractive(dbPath string, verbose bool) error {
	p := tea.NewProgram(newShellModel(dbPath, verbose), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
