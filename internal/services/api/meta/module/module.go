// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/httpkit"
	str "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/strings"

	metahttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/meta/http"
	sizingsvc "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/service"
)

// ServiceName is reported by the health, service and version endpoints
const ServiceName = "orifice-api"

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}
	solver := sizingsvc.ConfigFrom(deps.Cfg)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Tables:      deps.TablesOrDefault(),
			Metrics:     deps.Metrics,
			Tolerance:   solver.Tolerance,
			MaxIter:     solver.MaxIterations,
		})
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
