package modkit

import (
	"net/http"

	phttp "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http"
	pstrings "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Register func(phttp.Router)
}

// Build applies Option funcs and returns a plain struct
// a non-empty prefix is normalized to a single leading slash
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	prefix := c.prefix
	if prefix != "" {
		prefix = pstrings.MustPrefix(prefix)
	}
	return Built{
		Name:     c.name,
		Prefix:   prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount registers b under r, inside b.Prefix when set, with b.Mw applied
func (b Built) Mount(r phttp.Router) {
	if b.Prefix == "" {
		r.Group(func(g phttp.Router) {
			if len(b.Mw) > 0 {
				g.Use(b.Mw...)
			}
			b.Register(g)
		})
		return
	}
	r.Route(b.Prefix, func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		b.Register(sub)
	})
}
