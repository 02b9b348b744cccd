// Package module holds the contract every orifice API module satisfies
package module

import (
	phttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http"
)

// Module is an API surface mounted inside the /api/v1 scope
// it lives apart from modkit so a module's own ports package can import it
type Module interface {
	// MountRoutes registers the module's routes under Prefix on r
	MountRoutes(r phttp.Router)
	// Name is the short id used in logs ("meta", "sizing")
	Name() string
	// Prefix is the route scope, e.g. "/sizing"
	Prefix() string
	// Ports exposes typed service ports for the CLI and sibling modules, nil when none
	Ports() any
}
