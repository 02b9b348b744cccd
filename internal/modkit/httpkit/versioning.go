package httpkit

import (
	"net/http"
	"strings"
)

// APIVersion is the version every orifice route is published under
const APIVersion = "v1"

// Stack is an ordered middleware list, outermost first
type Stack = []func(http.Handler) http.Handler

// MountScope registers a subrouter at prefix, wraps it with mw and hands it to mount
// an empty mw leaves the parent's middleware as the only chain
func MountScope(r Router, prefix string, mw Stack, mount func(Router)) {
	r.Route(prefix, func(scope Router) {
		if len(mw) > 0 {
			scope.Use(mw...)
		}
		mount(scope)
	})
}

// MountAPI scopes mount under /api/{version}
//
//	httpkit.MountAPI(r, "v1", stack, func(api httpkit.Router) {
//	  sizing.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw Stack, mount func(Router)) {
	MountScope(r, "/api/"+strings.Trim(version, "/ "), mw, mount)
}

// MountAPIV1 is MountAPI pinned to APIVersion
func MountAPIV1(r Router, mw Stack, mount func(Router)) {
	MountAPI(r, APIVersion, mw, mount)
}
