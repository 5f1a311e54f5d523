package witlimbo

import (
	_ "embed"

	"github.com/wippyai/wit-limbo/errors"
	"github.com/wippyai/wit-limbo/host"
	"github.com/wippyai/wit-limbo/limbo"
)

// WIT names of the world contract.
const (
	PackageName     = "component:wit-limbo"
	WorldName       = "example"
	ImportInterface = "component:wit-limbo/host"
	ExportInterface = "component:wit-limbo/limbo"
)

//go:embed limbo.wit
var witText string

// WIT returns the WIT definition of the world: the full set of imports
// and exports a host and sandbox negotiate over.
func WIT() string {
	return witText
}

// Database and Statement are the resource handle types the export
// surface hands out, re-exported so callers of Instantiate do not need
// to import the limbo package for the common path.
type (
	Database  = limbo.Database
	Statement = limbo.Statement
)

// Imports is everything a host must supply before instantiation. Every
// field is required; the sandbox has no fallback for a missing
// capability.
type Imports struct {
	Host host.Host
}

// missing lists the unbound import functions, by declared name.
func (i Imports) missing() []errors.MissingImport {
	if i.Host != nil {
		return nil
	}
	return []errors.MissingImport{
		{Namespace: host.Namespace, Function: host.FuncRandomByte},
		{Namespace: host.Namespace, Function: host.FuncLog},
	}
}

// Instance is one instantiated world: imports bound, export surface
// live. It is the only entry point to the sandbox; there are no others.
type Instance struct {
	exports *limbo.Component
}

// Instantiate negotiates the world contract: imports are validated and
// bound first, then the export surface is constructed against them.
// A host that leaves any import unbound gets a MissingImportsError and
// no instance.
func Instantiate(imports Imports, opts ...limbo.Option) (*Instance, error) {
	if missing := imports.missing(); len(missing) > 0 {
		return nil, &errors.MissingImportsError{Imports: missing}
	}

	exports, err := limbo.New(imports.Host, opts...)
	if err != nil {
		return nil, err
	}
	return &Instance{exports: exports}, nil
}

// Exports returns the exported resource surface.
func (i *Instance) Exports() *limbo.Component {
	return i.exports
}

// Close tears down the instance, dropping every live resource.
func (i *Instance) Close() error {
	return i.exports.Close()
}
