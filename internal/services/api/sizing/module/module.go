// Package module wires sizing into the API using modkit
package module

import (
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/httpkit"
	str "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/strings"
	sizinghttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/http"
	sizingsvc "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/service"
)

// Module implements the sizing module
type Module struct {
	built modkit.Built
	svc   sizingsvc.Service
	cfg   sizingsvc.Config
}

// New constructs the sizing module; solver and strictness come from deps.Cfg (SOLVER_*, TABLES_STRICT)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cfg := sizingsvc.ConfigFrom(deps.Cfg)
	svc := sizingsvc.New(deps.TablesOrDefault(), cfg, deps.Metrics)

	m := &Module{svc: svc, cfg: cfg}

	base := []modkit.Option{
		modkit.WithName("sizing"),
		modkit.WithPrefix("/sizing"),
		modkit.WithPorts(Ports{Sizing: svc}),
	}
	b := modkit.Build(append(base, opts...)...)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		sizinghttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Config returns the solver settings the module was built with
func (m *Module) Config() sizingsvc.Config { return m.cfg }
