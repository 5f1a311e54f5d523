package limbo

import (
	"go.uber.org/zap"

	"github.com/wippyai/wit-limbo/errors"
	"github.com/wippyai/wit-limbo/host"
	"github.com/wippyai/wit-limbo/resource"
)

// Resource type IDs within the component's handle table.
const (
	databaseTypeID  uint32 = 1
	statementTypeID uint32 = 2
)

// Database is an opaque handle to one open database resource.
type Database resource.Handle

// Statement is an opaque handle to one prepared statement resource.
type Statement resource.Handle

// Component is the sandbox side of the boundary: it owns the handle
// table, the engine connections behind database handles, and the injected
// host capabilities.
type Component struct {
	host      host.Host
	resources *resource.Table
	logger    *zap.Logger
	closed    bool
}

// Option configures a Component.
type Option func(*Component)

// WithLogger sets the component's internal logger. Defaults to a no-op
// logger; this is separate from the host's log import, which carries
// diagnostics the sandbox addresses to the host.
func WithLogger(l *zap.Logger) Option {
	return func(c *Component) {
		c.logger = l
	}
}

// New creates a Component bound to the given host capabilities. The
// entropy import is consumed immediately to seed handle generations,
// mirroring the engine's seed acquisition at startup; a degenerate host
// returning a constant byte is fully supported.
func New(h host.Host, opts ...Option) (*Component, error) {
	if h == nil {
		return nil, errors.InvalidInput(errors.PhaseWorld, "host capabilities are required")
	}

	c := &Component{
		host:   h,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var seed uint32
	for i := 0; i < 4; i++ {
		seed = seed<<8 | uint32(h.RandomByte())
	}
	c.resources = resource.NewTableWithSeed(seed)
	c.resources.Subscribe(&lifecycleLogger{logger: c.logger})

	return c, nil
}

// Close drops every live resource: statements first so their engine-side
// state is finalized, then databases so each connection closes cleanly.
// Safe to call more than once.
func (c *Component) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var statements, databases []resource.Handle
	c.resources.Each(func(h resource.Handle, typeID uint32, _ any) bool {
		if typeID == statementTypeID {
			statements = append(statements, h)
		} else {
			databases = append(databases, h)
		}
		return true
	})
	for _, h := range statements {
		c.resources.Remove(h)
	}
	for _, h := range databases {
		c.resources.Remove(h)
	}
	return c.resources.Close()
}

// Resources reports the number of live handles, for diagnostics.
func (c *Component) Resources() int {
	return c.resources.Len()
}

// lifecycleLogger mirrors resource lifecycle events into the component
// logger.
type lifecycleLogger struct {
	logger *zap.Logger
}

func (l *lifecycleLogger) OnResourceEvent(e resource.Event) {
	var event string
	switch e.Type {
	case resource.EventCreated:
		event = "created"
	case resource.EventDropped:
		event = "dropped"
	default:
		return
	}
	l.logger.Debug("resource "+event,
		zap.Uint64("handle", uint64(e.Handle)),
		zap.String("type", typeName(e.TypeID)),
	)
}

func typeName(typeID uint32) string {
	switch typeID {
	case databaseTypeID:
		return "database"
	case statementTypeID:
		return "statement"
	default:
		return "unknown"
	}
}
